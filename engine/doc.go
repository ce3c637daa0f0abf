// Package engine runs effect chains over multi-channel audio buffers in
// fixed-size chunks.
//
// An Engine is configured once with New and reused for any number of
// Process calls. Each call splits every channel into contiguous chunks,
// widens them to float64, runs the channel's effect chain on each chunk in
// order and narrows the result back to float32 at the same offset. Progress
// is reported after every chunk.
//
// By default the state of every effect is cleared at each chunk boundary.
// WithCarryState(true) keeps reverb, EQ and compressor state across the
// chunks of a channel instead.
package engine
