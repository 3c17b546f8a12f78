// Package stack provides a LIFO adapter over any container that can grow,
// shrink and be read at its back.
//
// The adapter only ever touches the top element. Storage, growth and
// allocation all belong to the wrapped container. A Stack is not safe for
// concurrent use.
package stack

import (
	"github.com/larynjahor/lifo/alloc"
	"github.com/larynjahor/lifo/container"
)

// Stack adapts a container C into a last-in, first-out stack of T.
type Stack[T any, C container.Container[T, C]] struct {
	c C
}

// New returns an empty stack backed by a deque.
func New[T any]() *Stack[T, *container.Deque[T]] {
	return Of[T](container.NewDeque[T]())
}

// NewWithAllocator returns an empty deque-backed stack whose storage comes
// from a.
func NewWithAllocator[T any](a alloc.Allocator[T]) *Stack[T, *container.Deque[T]] {
	return Of[T](container.NewDequeWithAllocator[T](a))
}

// Of adopts c as the stack's storage. The back of c becomes the top. The
// caller hands c over and must not use it afterwards.
func Of[T any, C container.Container[T, C]](c C) *Stack[T, C] {
	return &Stack[T, C]{
		c: c,
	}
}

// OfCopy wraps a deep copy of c.
func OfCopy[T any, C container.Container[T, C]](c C) *Stack[T, C] {
	return Of[T](c.Clone())
}

// OfWithAllocator moves the contents of c into storage drawn from a.
func OfWithAllocator[T any, C container.AllocatorAware[T, C]](c C, a alloc.Allocator[T]) *Stack[T, C] {
	return Of[T](c.TakeWith(a))
}

// OfCopyWithAllocator copies c into storage drawn from a.
func OfCopyWithAllocator[T any, C container.AllocatorAware[T, C]](c C, a alloc.Allocator[T]) *Stack[T, C] {
	return Of[T](c.CloneWith(a))
}

// Clone returns an independent copy of s.
func (s *Stack[T, C]) Clone() *Stack[T, C] {
	return Of[T](s.c.Clone())
}

// Move transfers the contents of s into a new stack. s stays usable and is
// empty afterwards.
func (s *Stack[T, C]) Move() *Stack[T, C] {
	return Of[T](s.c.Take())
}

func CloneWithAllocator[T any, C container.AllocatorAware[T, C]](s *Stack[T, C], a alloc.Allocator[T]) *Stack[T, C] {
	return Of[T](s.c.CloneWith(a))
}

func MoveWithAllocator[T any, C container.AllocatorAware[T, C]](s *Stack[T, C], a alloc.Allocator[T]) *Stack[T, C] {
	return Of[T](s.c.TakeWith(a))
}

// Top returns the most recently pushed element. It panics on an empty stack.
func (s *Stack[T, C]) Top() T {
	return *s.TopRef()
}

// TopRef returns a pointer to the top element, valid until the next Push,
// Emplace or Pop. It panics on an empty stack.
func (s *Stack[T, C]) TopRef() *T {
	s.mustHave("Top")

	return s.c.Back()
}

func (s *Stack[T, C]) Empty() bool {
	return s.c.Empty()
}

func (s *Stack[T, C]) Size() int {
	return s.c.Len()
}

func (s *Stack[T, C]) Push(v T) {
	s.c.PushBack(v)
}

// Emplace grows the stack by one zero element, lets init fill it in place and
// returns a pointer to the new top.
func (s *Stack[T, C]) Emplace(init func(*T)) *T {
	return s.c.EmplaceBack(init)
}

// Pop removes the top element and returns it. It panics on an empty stack.
func (s *Stack[T, C]) Pop() T {
	s.mustHave("Pop")

	return s.c.PopBack()
}

// Swap exchanges the contents of s and other without copying elements.
func (s *Stack[T, C]) Swap(other *Stack[T, C]) {
	s.c, other.c = other.c, s.c
}

func Swap[T any, C container.Container[T, C]](a, b *Stack[T, C]) {
	a.Swap(b)
}

func (s *Stack[T, C]) mustHave(op string) {
	if s.c.Empty() {
		panic("stack: " + op + " on empty stack")
	}
}
