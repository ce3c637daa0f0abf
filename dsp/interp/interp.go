package interp

// Linear2 interpolates between x0 and x1 at fraction t in [0,1].
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// ResizeLinear resamples src into dst using linear interpolation.
//
// Output index i maps to source position i*len(src)/len(dst) (corner
// aligned, no half-sample offset), with the upper neighbour clamped to the
// last source sample. Upsampling therefore repeats the final sample at the
// tail instead of reading past the end.
func ResizeLinear(dst, src []float64) {
	n := len(src)
	m := len(dst)
	if m == 0 {
		return
	}
	if n == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	if n == m {
		copy(dst, src)
		return
	}

	scale := float64(n) / float64(m)
	for i := range dst {
		pos := float64(i) * scale
		lo := int(pos)
		if lo >= n-1 {
			dst[i] = src[n-1]
			continue
		}
		dst[i] = Linear2(pos-float64(lo), src[lo], src[lo+1])
	}
}
