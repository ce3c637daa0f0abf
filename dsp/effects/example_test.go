package effects_test

import (
	"fmt"

	"github.com/karatoken/karafx/dsp/effects"
)

func ExamplePitchShifter_Process() {
	p := effects.NewPitchShifter(12)

	block := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	p.Process(block)

	fmt.Println(block)
	// Output:
	// [0 2 4 6 0 2 4 6]
}

func ExampleReverb_Process() {
	r, err := effects.NewReverb(10, 0.5, 0.2, false, nil)
	if err != nil {
		fmt.Println("error")
		return
	}

	block := []float64{1, 0, 0, 0}
	r.Process(block)

	fmt.Printf("delay=%d out=%.2f\n", r.DelaySamples(), block)
	// Output:
	// delay=2 out=[1.00 0.00 0.15 0.00]
}
