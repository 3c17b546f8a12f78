package container

import (
	"fmt"
	"iter"
	"slices"

	"github.com/larynjahor/lifo/alloc"
)

const DefaultBlockSize = 64

// Deque is a double-ended queue stored as a list of fixed-size blocks.
// Elements never move once written; growing at either end only adds a block.
// Back operations are amortised O(1); a front push that opens a new block
// shifts the block list.
//
// The zero value is an empty deque on the heap allocator.
type Deque[T any] struct {
	alloc     alloc.Allocator[T]
	blockSize int
	blocks    [][]T
	head      int // offset of the front element inside blocks[0]
	n         int
}

func NewDeque[T any](vals ...T) *Deque[T] {
	return NewDequeWithAllocator(nil, vals...)
}

func NewDequeWithAllocator[T any](a alloc.Allocator[T], vals ...T) *Deque[T] {
	return NewDequeWithBlockSize(a, DefaultBlockSize, vals...)
}

func NewDequeWithBlockSize[T any](a alloc.Allocator[T], blockSize int, vals ...T) *Deque[T] {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}

	d := &Deque[T]{
		alloc:     alloc.OrHeap(a),
		blockSize: blockSize,
	}

	for _, v := range vals {
		d.PushBack(v)
	}

	return d
}

func (d *Deque[T]) Len() int {
	return d.n
}

func (d *Deque[T]) Empty() bool {
	return d.n == 0
}

func (d *Deque[T]) At(i int) *T {
	if i < 0 || i >= d.n {
		panic(fmt.Sprintf("container: deque index %d out of range [0:%d]", i, d.n))
	}

	return d.slot(i)
}

func (d *Deque[T]) Front() *T {
	d.mustHave("Front")

	return d.slot(0)
}

func (d *Deque[T]) Back() *T {
	d.mustHave("Back")

	return d.slot(d.n - 1)
}

func (d *Deque[T]) PushBack(v T) {
	*d.growBack() = v
}

func (d *Deque[T]) EmplaceBack(init func(*T)) *T {
	p := d.growBack()
	if init != nil {
		init(p)
	}

	return p
}

func (d *Deque[T]) PushFront(v T) {
	*d.growFront() = v
}

func (d *Deque[T]) PopBack() T {
	d.mustHave("PopBack")

	v := take(d.slot(d.n - 1))
	d.n--

	if d.n == 0 {
		d.reset()
		return v
	}

	// one spare block stays at the back so push/pop on a boundary doesn't thrash
	d.trim((d.head+d.n-1)/d.blockSize + 2)

	return v
}

func (d *Deque[T]) PopFront() T {
	d.mustHave("PopFront")

	v := take(d.slot(0))
	d.head++
	d.n--

	if d.n == 0 {
		d.reset()
		return v
	}

	if d.head == d.blockSize {
		d.alloc.Deallocate(d.blocks[0])
		d.blocks[0] = nil
		d.blocks = d.blocks[1:]
		d.head = 0
	}

	return v
}

// Clear drops every element and returns all blocks to the allocator.
func (d *Deque[T]) Clear() {
	for _, b := range d.blocks {
		clear(b)
	}

	d.n = 0
	d.head = 0
	d.trim(0)
}

func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.n; i++ {
			if !yield(*d.slot(i)) {
				return
			}
		}
	}
}

func (d *Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := d.n - 1; i >= 0; i-- {
			if !yield(*d.slot(i)) {
				return
			}
		}
	}
}

func (d *Deque[T]) Clone() *Deque[T] {
	return d.CloneWith(d.alloc)
}

func (d *Deque[T]) CloneWith(a alloc.Allocator[T]) *Deque[T] {
	c := NewDequeWithBlockSize(a, d.blockSize)

	for v := range d.All() {
		c.PushBack(v)
	}

	return c
}

func (d *Deque[T]) Take() *Deque[T] {
	t := &Deque[T]{
		alloc:     d.alloc,
		blockSize: d.blockSize,
		blocks:    d.blocks,
		head:      d.head,
		n:         d.n,
	}

	d.blocks = nil
	d.head = 0
	d.n = 0

	return t
}

// TakeWith moves the elements into storage drawn from a. The receiver's
// blocks go back to its own allocator.
func (d *Deque[T]) TakeWith(a alloc.Allocator[T]) *Deque[T] {
	t := d.CloneWith(a)
	d.Clear()

	return t
}

func (d *Deque[T]) slot(i int) *T {
	pos := d.head + i

	return &d.blocks[pos/d.blockSize][pos%d.blockSize]
}

func (d *Deque[T]) init() {
	if d.blockSize == 0 {
		d.blockSize = DefaultBlockSize
	}

	if d.alloc == nil {
		d.alloc = alloc.NewHeap[T]()
	}
}

func (d *Deque[T]) growBack() *T {
	d.init()

	if (d.head+d.n)/d.blockSize == len(d.blocks) {
		d.blocks = append(d.blocks, d.alloc.Allocate(d.blockSize))
	}

	d.n++

	return d.slot(d.n - 1)
}

func (d *Deque[T]) growFront() *T {
	d.init()

	if d.head == 0 {
		d.blocks = slices.Insert(d.blocks, 0, d.alloc.Allocate(d.blockSize))
		d.head = d.blockSize
	}

	d.head--
	d.n++

	return d.slot(0)
}

func (d *Deque[T]) reset() {
	d.head = 0
	d.trim(1)
}

func (d *Deque[T]) trim(keep int) {
	for len(d.blocks) > keep {
		last := len(d.blocks) - 1

		d.alloc.Deallocate(d.blocks[last])
		d.blocks[last] = nil
		d.blocks = d.blocks[:last]
	}
}

func (d *Deque[T]) mustHave(op string) {
	if d.n == 0 {
		panic("container: " + op + " on empty deque")
	}
}

func take[T any](p *T) T {
	var zero T

	v := *p
	*p = zero

	return v
}
