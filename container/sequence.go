// Package container holds the sequential containers a stack can sit on,
// together with the capability interfaces that describe them.
package container

import (
	"iter"

	"github.com/larynjahor/lifo/alloc"
)

// Sequence is the minimal back-end a LIFO adapter needs.
type Sequence[T any] interface {
	Back() *T
	PushBack(v T)
	EmplaceBack(init func(*T)) *T
	PopBack() T
	Len() int
	Empty() bool
}

// Container is a Sequence with value semantics: Clone deep-copies, Take moves
// the contents out and leaves the receiver empty.
type Container[T any, C any] interface {
	Sequence[T]
	Clone() C
	Take() C
}

// AllocatorAware containers can rebuild their storage from a given allocator.
type AllocatorAware[T any, C any] interface {
	Container[T, C]
	CloneWith(a alloc.Allocator[T]) C
	TakeWith(a alloc.Allocator[T]) C
}

// Iterable containers expose their elements front to back.
type Iterable[T any, C any] interface {
	Container[T, C]
	All() iter.Seq[T]
}
