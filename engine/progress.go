package engine

import "sync"

// progress turns processed sample counts into serialised, non-decreasing
// callback values.
type progress struct {
	mu    sync.Mutex
	fn    ProgressFunc
	done  int
	total int
	last  float64
}

func newProgress(fn ProgressFunc, total int) *progress {
	return &progress{fn: fn, total: total}
}

// advance records n more processed samples and reports the new fraction.
func (p *progress) advance(n int) {
	if p.fn == nil || p.total <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.done += n
	if p.done > p.total {
		p.done = p.total
	}

	v := float64(p.done) / float64(p.total)
	if v < p.last {
		v = p.last
	}
	p.last = v

	p.fn(v)
}
