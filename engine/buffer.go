package engine

// AudioBuffer is a read-only view of planar float32 audio.
//
// Implementations must keep the returned channel slices unchanged for the
// duration of a Process call. The engine never writes to them.
type AudioBuffer interface {
	SampleRate() int
	NumberOfChannels() int
	Length() int
	ChannelData(ch int) []float32
}

// PlanarBuffer is a slice-of-channels AudioBuffer.
type PlanarBuffer struct {
	sampleRate int
	channels   [][]float32
}

// NewPlanarBuffer wraps channels without copying. Length reports the length
// of the first channel.
func NewPlanarBuffer(sampleRate int, channels [][]float32) *PlanarBuffer {
	return &PlanarBuffer{sampleRate: sampleRate, channels: channels}
}

// SampleRate implements AudioBuffer.
func (b *PlanarBuffer) SampleRate() int { return b.sampleRate }

// NumberOfChannels implements AudioBuffer.
func (b *PlanarBuffer) NumberOfChannels() int { return len(b.channels) }

// Length implements AudioBuffer.
func (b *PlanarBuffer) Length() int {
	if len(b.channels) == 0 {
		return 0
	}

	return len(b.channels[0])
}

// ChannelData implements AudioBuffer. It returns nil for out of range
// channels.
func (b *PlanarBuffer) ChannelData(ch int) []float32 {
	if ch < 0 || ch >= len(b.channels) {
		return nil
	}

	return b.channels[ch]
}

// Result holds the processed channels, one per input channel, each as long
// as its input.
type Result struct {
	Channels [][]float32
}

// Buffer wraps the result as a PlanarBuffer at sampleRate.
func (r Result) Buffer(sampleRate int) *PlanarBuffer {
	return NewPlanarBuffer(sampleRate, r.Channels)
}
