// Package effects provides the per-chunk effect kernels of the karaoke
// effects engine.
//
//   - PitchShifter: resampling pitch shift that preserves block length.
//   - Reverb: single-tap feedback comb with fixed 70/30 dry/wet mix.
//   - EQ: one-pole smoothing filter with a fixed 2x boost.
//   - Compressor: envelope-follower compressor with hard knee.
//
// Every kernel processes a []float64 block in place and exposes Reset to
// clear whatever state it carries between blocks. Kernels are mono and not
// safe for concurrent use; build one per channel.
package effects
