// Package alloc provides the storage handles that containers draw their
// buffers from.
package alloc

// Allocator hands out element buffers. Allocate returns a zeroed slice of
// length n; Deallocate gives a buffer back once the caller stops using it.
type Allocator[T any] interface {
	Allocate(n int) []T
	Deallocate(buf []T)
}

// Heap allocates with make and leaves reclamation to the garbage collector.
type Heap[T any] struct{}

func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

func (h *Heap[T]) Allocate(n int) []T {
	return make([]T, n)
}

func (h *Heap[T]) Deallocate([]T) {}

// OrHeap returns a, or a heap allocator when a is nil.
func OrHeap[T any](a Allocator[T]) Allocator[T] {
	if a == nil {
		return NewHeap[T]()
	}

	return a
}
