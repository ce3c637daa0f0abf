package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/karatoken/karafx/dsp/spectrum"
	"github.com/karatoken/karafx/engine"
	"github.com/karatoken/karafx/stats/level"
)

func writeReport(w io.Writer, before, after engine.AudioBuffer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, err := fmt.Fprintf(tw, "Channel\tStage\tPeak [dBFS]\tRMS [dBFS]\tCrest\tOvers\tDominant [Hz]\n")
	if err != nil {
		return err
	}

	for ch := 0; ch < before.NumberOfChannels(); ch++ {
		for _, stage := range []struct {
			name string
			buf  engine.AudioBuffer
		}{{"in", before}, {"out", after}} {
			data := stage.buf.ChannelData(ch)
			s := level.Calculate(data)

			freq, err := spectrum.DominantFrequency(data, float64(stage.buf.SampleRate()))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%.3f\t%d\t%.1f\n",
				ch, stage.name, s.PeakDB, s.RMSDB, s.CrestFactor, s.Overs, freq)
			if err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}
