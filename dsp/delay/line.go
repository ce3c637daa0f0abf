// Package delay provides a fixed-length circular delay line.
package delay

import "github.com/karatoken/karafx/dsp/core"

// Line is a circular delay line holding the last Len() written samples.
type Line struct {
	buffer   []float64
	writePos int
	// dirty counts the slots written since the last Reset, up to Len().
	dirty int
}

// New returns a zeroed delay line of fixed size.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, core.ErrInvalidConfiguration.New("delay size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Write writes one sample, overwriting the oldest.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	if d.dirty < len(d.buffer) {
		d.dirty++
	}
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read returns the sample written delay writes ago, 1 <= delay <= Len().
// Positions never written read as zero.
func (d *Line) Read(delay int) float64 {
	size := len(d.buffer)
	readPos := ((d.writePos-delay)%size + size) % size
	return d.buffer[readPos]
}

// Tail returns the oldest sample, the one written Len() writes ago.
func (d *Line) Tail() float64 {
	return d.buffer[d.writePos]
}

// Reset clears line state. Only slots written since the previous Reset are
// touched, so resetting a long, mostly idle line is cheap.
func (d *Line) Reset() {
	clear(d.buffer[:d.dirty])
	d.writePos = 0
	d.dirty = 0
}
