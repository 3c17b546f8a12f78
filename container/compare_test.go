package container_test

import (
	"cmp"
	"testing"

	"github.com/larynjahor/lifo/container"
	"github.com/stretchr/testify/require"
)

func TestCompareFunc_Mixed(t *testing.T) {
	d := container.NewDeque(1, 2, 3)
	v := container.NewVector(1, 2, 3)

	eq := func(x, y int) bool { return x == y }

	require.True(t, container.EqualFunc[int](d, v, eq))
	require.Equal(t, 0, container.CompareFunc[int](d, v, cmp.Compare[int]))

	v.PopBack()
	require.False(t, container.EqualFunc[int](d, v, eq))
	require.Equal(t, 1, container.CompareFunc[int](d, v, cmp.Compare[int]))
	require.Equal(t, -1, container.CompareFunc[int](v, d, cmp.Compare[int]))

	*v.Back() = 5
	require.Equal(t, -1, container.CompareFunc[int](d, v, cmp.Compare[int]))
}
