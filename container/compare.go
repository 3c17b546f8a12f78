package container

import "iter"

type Ranger[T any] interface {
	Len() int
	All() iter.Seq[T]
}

// EqualFunc reports whether a and b hold the same number of elements and eq
// holds for every pair, front to back.
func EqualFunc[T any](a, b Ranger[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	next, stop := iter.Pull(b.All())
	defer stop()

	for x := range a.All() {
		y, ok := next()
		if !ok || !eq(x, y) {
			return false
		}
	}

	return true
}

// CompareFunc orders a and b lexicographically, front to back. A proper
// prefix orders before the longer sequence.
func CompareFunc[T any](a, b Ranger[T], cmp func(T, T) int) int {
	next, stop := iter.Pull(b.All())
	defer stop()

	for x := range a.All() {
		y, ok := next()
		if !ok {
			return 1
		}

		if c := cmp(x, y); c != 0 {
			return c
		}
	}

	if _, ok := next(); ok {
		return -1
	}

	return 0
}
