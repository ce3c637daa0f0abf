package buffer

import "sync"

// Block is a reusable float64 working area.
type Block struct {
	samples []float64
}

// Samples returns the block contents.
func (b *Block) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Block) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, reusing capacity when possible. Newly exposed
// samples are zeroed; retained ones keep their values.
func (b *Block) Resize(n int) {
	n = max(n, 0)

	old := len(b.samples)
	if n > cap(b.samples) {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s

		return
	}

	b.samples = b.samples[:n]
	clear(b.samples[min(old, n):])
}

// Pool provides sync.Pool-based Block reuse so that repeated Process calls
// do not allocate a working block per channel.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Block{}
			},
		},
	}
}

// Get returns a zeroed Block of the requested length. Callers must return
// it via Put when done.
func (p *Pool) Get(length int) *Block {
	b := p.pool.Get().(*Block)
	b.Resize(0)
	b.Resize(length)

	return b
}

// Put returns a Block to the pool. The caller must not use it afterwards.
func (p *Pool) Put(b *Block) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
