package ring

import (
	"sync"

	"github.com/lattice384/ringq/params"
	"github.com/lattice384/ringq/residue"
)

// BufferPool hands out scratch []residue.Residue buffers of length
// params.N for Forward/Inverse to pass to transform.CRT/InvCRT. Built
// directly on sync.Pool since this engine has no per-level/per-modulus
// dimension to parameterize a pool by.
type BufferPool struct {
	pool sync.Pool
}

// NewBufferPool returns a pool of scratch buffers of length params.N.
func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() any {
				buf := make([]residue.Residue, params.N)
				return &buf
			},
		},
	}
}

// Get returns a scratch buffer of length params.N. Its contents are
// unspecified; callers must not assume it is zeroed.
func (p *BufferPool) Get() *[]residue.Residue {
	return p.pool.Get().(*[]residue.Residue)
}

// Put returns buf to the pool. buf must not be used by the caller again.
func (p *BufferPool) Put(buf *[]residue.Residue) {
	p.pool.Put(buf)
}
