package buffer

import "sync"

// Pool hands out Buffers backed by a sync.Pool, so the per-row and
// per-column intermediates of a repeated image transform stop churning
// the garbage collector.
type Pool struct {
	pool sync.Pool
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed Buffer of the requested length. Return it with Put
// once the samples are no longer referenced.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	b.Zero()
	return b
}

// Put hands b back for reuse. Putting nil is a no-op.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
