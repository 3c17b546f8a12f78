package container

import (
	"fmt"
	"iter"

	"github.com/larynjahor/lifo/alloc"
)

const minVectorSize = 8

// Vector is a contiguous sequence that doubles its buffer through its
// allocator when full. The zero value is an empty vector on the heap
// allocator.
type Vector[T any] struct {
	alloc alloc.Allocator[T]
	buf   []T
	n     int
}

func NewVector[T any](vals ...T) *Vector[T] {
	return NewVectorWithAllocator(nil, vals...)
}

func NewVectorWithAllocator[T any](a alloc.Allocator[T], vals ...T) *Vector[T] {
	v := &Vector[T]{
		alloc: alloc.OrHeap(a),
	}

	if len(vals) > 0 {
		v.buf = v.alloc.Allocate(max(len(vals), minVectorSize))
		v.n = copy(v.buf, vals)
	}

	return v
}

func (v *Vector[T]) Len() int {
	return v.n
}

func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

func (v *Vector[T]) Empty() bool {
	return v.n == 0
}

func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("container: vector index %d out of range [0:%d]", i, v.n))
	}

	return &v.buf[i]
}

func (v *Vector[T]) Back() *T {
	if v.n == 0 {
		panic("container: Back on empty vector")
	}

	return &v.buf[v.n-1]
}

func (v *Vector[T]) PushBack(val T) {
	*v.grow() = val
}

func (v *Vector[T]) EmplaceBack(init func(*T)) *T {
	p := v.grow()
	if init != nil {
		init(p)
	}

	return p
}

func (v *Vector[T]) PopBack() T {
	if v.n == 0 {
		panic("container: PopBack on empty vector")
	}

	v.n--

	return take(&v.buf[v.n])
}

// Values returns the live elements. The slice aliases the vector's buffer.
func (v *Vector[T]) Values() []T {
	return v.buf[:v.n]
}

func (v *Vector[T]) Clear() {
	v.release()
	v.n = 0
}

func (v *Vector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.buf[:v.n] {
			if !yield(e) {
				return
			}
		}
	}
}

func (v *Vector[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) Clone() *Vector[T] {
	return v.CloneWith(v.alloc)
}

func (v *Vector[T]) CloneWith(a alloc.Allocator[T]) *Vector[T] {
	return NewVectorWithAllocator(a, v.Values()...)
}

func (v *Vector[T]) Take() *Vector[T] {
	t := &Vector[T]{
		alloc: v.alloc,
		buf:   v.buf,
		n:     v.n,
	}

	v.buf = nil
	v.n = 0

	return t
}

func (v *Vector[T]) TakeWith(a alloc.Allocator[T]) *Vector[T] {
	t := v.CloneWith(a)
	v.Clear()

	return t
}

func (v *Vector[T]) grow() *T {
	if v.alloc == nil {
		v.alloc = alloc.NewHeap[T]()
	}

	if v.n == len(v.buf) {
		next := v.alloc.Allocate(max(2*len(v.buf), minVectorSize))
		copy(next, v.buf[:v.n])

		v.release()
		v.buf = next
	}

	v.n++

	return &v.buf[v.n-1]
}

func (v *Vector[T]) release() {
	if v.buf == nil {
		return
	}

	clear(v.buf)
	v.alloc.Deallocate(v.buf)
	v.buf = nil
}
