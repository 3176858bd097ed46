package minimap

// Cursor is a reusable 1x1 draw primitive. It carries a position and a fill
// color and nothing else: it is never drawn on its own, only as part of a
// batch handed to a Surface.
type Cursor struct {
	X, Y float64
	Fill Color
}

// Cell returns the surface cell the cursor covers.
func (c *Cursor) Cell() (int, int) {
	return cell(c.X, c.Y)
}

// Pool recycles cursors across frames. Every cursor is owned either by the
// free stack or by the active set, never both, and cursors are never
// destroyed: the pool only grows.
//
// A Pool is not safe for concurrent use.
type Pool struct {
	free    []*Cursor
	active  []*Cursor
	created int
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// Grow pre-allocates n cursors onto the free stack.
func (p *Pool) Grow(n int) {
	for i := 0; i < n; i++ {
		p.free = append(p.free, p.newCursor())
	}
}

// Acquire pops a free cursor or allocates one in the default state.
func (p *Pool) Acquire() *Cursor {
	if n := len(p.free); n > 0 {
		c := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return c
	}
	return p.newCursor()
}

// Activate adds c to the pending batch.
func (p *Pool) Activate(c *Cursor) {
	p.active = append(p.active, c)
}

// Active returns the pending batch. The slice is only valid until the next
// ReleaseAll.
func (p *Pool) Active() []*Cursor {
	return p.active
}

// Prepare acquires one cursor per point, places it and fills it with fill,
// and returns the resulting batch.
func (p *Pool) Prepare(points []GridPoint, fill Color) []*Cursor {
	for i := range points {
		c := p.Acquire()
		c.X = points[i].X
		c.Y = points[i].Y
		c.Fill = fill
		p.Activate(c)
	}
	return p.active
}

// ReleaseAll moves the whole active set back onto the free stack.
func (p *Pool) ReleaseAll() {
	if len(p.active) == 0 {
		return
	}
	p.free = append(p.free, p.active...)
	clear(p.active)
	p.active = p.active[:0]
}

// Created is the number of cursors ever allocated.
func (p *Pool) Created() int { return p.created }

// FreeLen is the size of the free stack.
func (p *Pool) FreeLen() int { return len(p.free) }

// ActiveLen is the size of the pending batch.
func (p *Pool) ActiveLen() int { return len(p.active) }

func (p *Pool) newCursor() *Cursor {
	p.created++
	return &Cursor{Fill: White}
}
