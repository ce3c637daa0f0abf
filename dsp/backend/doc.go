// Package backend provides the numeric strategies used by the effect runtimes
// for block arithmetic and float32/float64 conversion.
//
// [Reference] is a plain Go implementation that is always available and
// deterministic. [Vector] dispatches to the SIMD kernels of algo-vecmath and
// is only constructed when the CPU exposes a usable instruction set. Both
// produce identical results; the choice only affects throughput.
//
// A backend is selected once per engine and shared by all of its calls.
package backend
