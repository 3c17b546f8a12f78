package alloc

import "sync/atomic"

type Stats struct {
	Allocations   int64
	Deallocations int64
	Outstanding   int64 // elements handed out and not yet returned
}

// Counted wraps an allocator and records its traffic.
type Counted[T any] struct {
	next Allocator[T]

	allocations   atomic.Int64
	deallocations atomic.Int64
	outstanding   atomic.Int64
}

func NewCounted[T any](next Allocator[T]) *Counted[T] {
	return &Counted[T]{
		next: OrHeap(next),
	}
}

func (c *Counted[T]) Allocate(n int) []T {
	c.allocations.Add(1)
	c.outstanding.Add(int64(n))

	return c.next.Allocate(n)
}

func (c *Counted[T]) Deallocate(buf []T) {
	c.deallocations.Add(1)
	c.outstanding.Add(-int64(len(buf)))

	c.next.Deallocate(buf)
}

func (c *Counted[T]) Stats() Stats {
	return Stats{
		Allocations:   c.allocations.Load(),
		Deallocations: c.deallocations.Load(),
		Outstanding:   c.outstanding.Load(),
	}
}
