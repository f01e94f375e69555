package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles next-generation buffers between steps
type GridPool struct {
	pool sync.Pool
}

// NewGridPool returns a pool that hands out empty grids
func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, resetting its kind and dimensions
func (p *GridPool) Get(kind Kind, width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(kind, width, height)
	return g
}

// Put returns a grid to the pool, dropping its cells
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}
