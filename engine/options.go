package engine

import "github.com/karatoken/karafx/dsp/effectchain"

// ProgressFunc receives the fraction of work done, in [0,1].
type ProgressFunc func(progress float64)

type processOptions struct {
	chunkSize  int
	effects    []effectchain.Effect
	progress   ProgressFunc
	carryState bool
}

// ProcessOption configures a single Process call.
type ProcessOption func(*processOptions)

// WithChunkSize sets the chunk size in samples. It defaults to
// Config.BufferSize; zero or negative values are rejected by Process.
func WithChunkSize(n int) ProcessOption {
	return func(o *processOptions) {
		o.chunkSize = n
	}
}

// WithEffects sets the effect chain, applied in order.
func WithEffects(fx ...effectchain.Effect) ProcessOption {
	return func(o *processOptions) {
		o.effects = fx
	}
}

// WithProgress registers a callback invoked after every chunk.
func WithProgress(fn ProgressFunc) ProcessOption {
	return func(o *processOptions) {
		o.progress = fn
	}
}

// WithCarryState keeps effect state across the chunk boundaries of a
// channel instead of clearing it.
func WithCarryState(carry bool) ProcessOption {
	return func(o *processOptions) {
		o.carryState = carry
	}
}
