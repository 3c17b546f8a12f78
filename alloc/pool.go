package alloc

import (
	"math/bits"
	"sync"
	"sync/atomic"
)

const (
	minBitSize = 6 // 2**6=64 elements
	steps      = 20

	minSize = 1 << minBitSize
	maxSize = 1 << (minBitSize + steps - 1)
)

// Pool recycles buffers in power-of-two size classes. It is safe for
// concurrent use, so a single Pool may back many containers.
type Pool[T any] struct {
	classes [steps]sync.Pool
	idle    int64
}

func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

func (p *Pool[T]) Allocate(n int) []T {
	if n > maxSize {
		return make([]T, n)
	}

	idx := index(n)

	if v := p.classes[idx].Get(); v != nil {
		atomic.AddInt64(&p.idle, -1)

		buf := *(v.(*[]T))

		return buf[:n]
	}

	return make([]T, n, minSize<<idx)
}

func (p *Pool[T]) Deallocate(buf []T) {
	c := cap(buf)
	if c < minSize || c > maxSize || c&(c-1) != 0 {
		return
	}

	buf = buf[:c]
	clear(buf)

	p.classes[index(c)].Put(&buf)
	atomic.AddInt64(&p.idle, 1)
}

// Idle reports how many buffers are parked in the pool. The runtime may drop
// parked buffers at any GC, so the value is an upper bound.
func (p *Pool[T]) Idle() int64 {
	return atomic.LoadInt64(&p.idle)
}

func index(n int) int {
	if n <= minSize {
		return 0
	}

	return bits.Len(uint(n-1)) - minBitSize
}
