package container_test

import (
	"slices"
	"testing"

	"github.com/larynjahor/lifo/alloc"
	"github.com/larynjahor/lifo/container"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	v := container.NewVector[int]()
	require.True(t, v.Empty())
	require.Panics(t, func() { v.Back() })

	for i := range 20 {
		v.PushBack(i)
	}

	require.Equal(t, 20, v.Len())
	require.Equal(t, 32, v.Cap())
	require.Equal(t, 19, *v.Back())
	require.Equal(t, 5, *v.At(5))

	require.Equal(t, 19, v.PopBack())
	require.Equal(t, 18, *v.Back())
	require.Equal(t, []int{18, 17, 16}, slices.Collect(v.Backward())[:3])

	v.Clear()
	require.True(t, v.Empty())
	require.Panics(t, func() { v.PopBack() })
}

func TestVector_Allocator(t *testing.T) {
	a := alloc.NewCounted[string](alloc.NewPool[string]())
	v := container.NewVectorWithAllocator[string](a)

	for range 9 {
		v.PushBack("foo")
	}

	// 8, then 16
	require.Equal(t, alloc.Stats{Allocations: 2, Deallocations: 1, Outstanding: 16}, a.Stats())

	c := v.CloneWith(nil)
	require.Equal(t, v.Values(), c.Values())
	require.Equal(t, int64(2), a.Stats().Allocations)

	v.Clear()
	require.Equal(t, int64(0), a.Stats().Outstanding)
}

func TestVector_ZeroValue(t *testing.T) {
	var v container.Vector[int]

	v.EmplaceBack(func(p *int) { *p = 4 })
	v.PushBack(5)

	require.Equal(t, []int{4, 5}, v.Values())

	m := v.Take()
	require.True(t, v.Empty())
	require.Equal(t, []int{4, 5}, slices.Collect(m.All()))
}
