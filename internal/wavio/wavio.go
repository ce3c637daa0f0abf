// Package wavio reads and writes PCM WAV files as planar float32 buffers.
package wavio

import (
	"io"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/joomcode/errorx"
	"github.com/karatoken/karafx/dsp/core"
	"github.com/karatoken/karafx/engine"
)

// ErrFormat marks an unreadable or unsupported WAV stream.
var ErrFormat = core.Errors.NewType("wav_format")

// WAVE format tags.
const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// Info describes the stored format of a decoded file.
type Info struct {
	SampleRate  int
	NumChannels int
	BitDepth    int
	// Float reports IEEE float samples rather than integer PCM.
	Float bool
}

// Decode reads a whole WAV stream. Integer PCM is scaled to [-1, 1);
// 32-bit IEEE float is taken as is. Any other encoding is an ErrFormat.
func Decode(r io.ReadSeeker) (*engine.PlanarBuffer, Info, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, Info{}, ErrFormat.New("wavio: not a valid wav file")
	}

	isFloat := false
	switch dec.WavAudioFormat {
	case wavFormatPCM:
	case wavFormatFloat:
		if dec.BitDepth != 32 {
			return nil, Info{}, ErrFormat.New("wavio: unsupported %d-bit float encoding", dec.BitDepth)
		}
		isFloat = true
	default:
		return nil, Info{}, ErrFormat.New("wavio: unsupported wav format tag %d", dec.WavAudioFormat)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, Info{}, ErrFormat.Wrap(err, "wavio: decode pcm")
	}

	info := Info{
		SampleRate:  int(dec.SampleRate),
		NumChannels: int(dec.NumChans),
		BitDepth:    int(dec.BitDepth),
		Float:       isFloat,
	}

	sample := func(v int) float32 { return math.Float32frombits(uint32(int32(v))) }
	if !isFloat {
		scale, err := fullScale(info.BitDepth)
		if err != nil {
			return nil, Info{}, err
		}
		sample = func(v int) float32 { return float32(float64(v) / scale) }
	}

	if info.NumChannels <= 0 {
		return nil, Info{}, ErrFormat.New("wavio: no channels")
	}

	frames := len(pcm.Data) / info.NumChannels
	channels := make([][]float32, info.NumChannels)
	for ch := range channels {
		channels[ch] = make([]float32, frames)
	}

	for i := 0; i < frames; i++ {
		for ch := range channels {
			channels[ch][i] = sample(pcm.Data[i*info.NumChannels+ch])
		}
	}

	return engine.NewPlanarBuffer(info.SampleRate, channels), info, nil
}

// Encode writes buf as interleaved PCM at bitDepth (16, 24 or 32). Samples
// outside the integer range are saturated.
func Encode(w io.WriteSeeker, buf engine.AudioBuffer, bitDepth int) error {
	scale, err := fullScale(bitDepth)
	if err != nil {
		return err
	}

	channels := buf.NumberOfChannels()
	if channels <= 0 {
		return ErrFormat.New("wavio: cannot encode %d channels", channels)
	}

	frames := buf.Length()
	data := make([]int, frames*channels)

	for ch := 0; ch < channels; ch++ {
		src := buf.ChannelData(ch)
		for i := 0; i < frames; i++ {
			data[i*channels+ch] = quantize(src[i], scale)
		}
	}

	enc := wav.NewEncoder(w, buf.SampleRate(), bitDepth, channels, wavFormatPCM)

	err = enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: buf.SampleRate()},
		Data:           data,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		return errorx.Decorate(err, "wavio: write samples")
	}

	err = enc.Close()
	if err != nil {
		return errorx.Decorate(err, "wavio: finalise header")
	}

	return nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*engine.PlanarBuffer, Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Info{}, errorx.Decorate(err, "wavio: open %s", path)
	}
	defer f.Close()

	return Decode(f)
}

// WriteFile encodes buf to a new file at path.
func WriteFile(path string, buf engine.AudioBuffer, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return errorx.Decorate(err, "wavio: create %s", path)
	}

	err = Encode(f, buf, bitDepth)
	if err != nil {
		f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return errorx.Decorate(err, "wavio: close %s", path)
	}

	return nil
}

func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16, 24, 32:
		return float64(int64(1) << (bitDepth - 1)), nil
	default:
		return 0, ErrFormat.New("wavio: unsupported bit depth %d", bitDepth)
	}
}

func quantize(x float32, scale float64) int {
	v := math.Round(float64(x) * scale)
	switch {
	case math.IsNaN(v):
		return 0
	case v > scale-1:
		return int(scale - 1)
	case v < -scale:
		return int(-scale)
	default:
		return int(v)
	}
}
