package stack

import (
	"github.com/larynjahor/lifo/container"
	"golang.org/x/exp/constraints"
)

// Comparisons walk both stacks bottom to top through their containers.

func EqualFunc[T any, C container.Iterable[T, C]](a, b *Stack[T, C], eq func(T, T) bool) bool {
	return container.EqualFunc[T](a.c, b.c, eq)
}

func CompareFunc[T any, C container.Iterable[T, C]](a, b *Stack[T, C], cmp func(T, T) int) int {
	return container.CompareFunc[T](a.c, b.c, cmp)
}

func Equal[T comparable, C container.Iterable[T, C]](a, b *Stack[T, C]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func NotEqual[T comparable, C container.Iterable[T, C]](a, b *Stack[T, C]) bool {
	return !Equal(a, b)
}

// Compare returns -1, 0 or +1 as a orders before, equal to or after b.
func Compare[T constraints.Ordered, C container.Iterable[T, C]](a, b *Stack[T, C]) int {
	return CompareFunc(a, b, compareOrdered[T])
}

func Less[T constraints.Ordered, C container.Iterable[T, C]](a, b *Stack[T, C]) bool {
	return Compare(a, b) < 0
}

func LessEqual[T constraints.Ordered, C container.Iterable[T, C]](a, b *Stack[T, C]) bool {
	return Compare(a, b) <= 0
}

func Greater[T constraints.Ordered, C container.Iterable[T, C]](a, b *Stack[T, C]) bool {
	return Compare(a, b) > 0
}

func GreaterEqual[T constraints.Ordered, C container.Iterable[T, C]](a, b *Stack[T, C]) bool {
	return Compare(a, b) >= 0
}

func compareOrdered[T constraints.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
