package stack_test

import (
	"slices"
	"testing"

	"github.com/larynjahor/lifo/container"
	"github.com/larynjahor/lifo/stack"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestStack_PropLIFO(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOf(rapid.Int()).Draw(t, "xs")

		s := stack.New[int]()
		for _, x := range xs {
			s.Push(x)
			require.Equal(t, x, s.Top())
		}

		require.Equal(t, len(xs), s.Size())

		popped := make([]int, 0, len(xs))
		for !s.Empty() {
			popped = append(popped, s.Pop())
		}

		slices.Reverse(popped)
		require.True(t, slices.Equal(xs, popped))
	})
}

// Random push/pop traffic against a slice model.
func TestStack_PropModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		blockSize := rapid.IntRange(1, 8).Draw(t, "blockSize")

		s := stack.Of[int](container.NewDequeWithBlockSize[int](nil, blockSize))

		var model []int

		t.Repeat(map[string]func(*rapid.T){
			"push": func(t *rapid.T) {
				v := rapid.Int().Draw(t, "v")

				s.Push(v)
				model = append(model, v)

				require.Equal(t, v, s.Top())
			},
			"emplace": func(t *rapid.T) {
				v := rapid.Int().Draw(t, "v")

				s.Emplace(func(p *int) { *p = v })
				model = append(model, v)
			},
			"pop": func(t *rapid.T) {
				if len(model) == 0 {
					t.Skip("empty")
				}

				want := model[len(model)-1]
				model = model[:len(model)-1]

				require.Equal(t, want, s.Pop())

				if len(model) > 0 {
					require.Equal(t, model[len(model)-1], s.Top())
				}
			},
			"": func(t *rapid.T) {
				require.Equal(t, len(model), s.Size())
				require.Equal(t, len(model) == 0, s.Empty())
			},
		})
	})
}

func TestStack_PropSwap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOf(rapid.Int()).Draw(t, "xs")
		ys := rapid.SliceOf(rapid.Int()).Draw(t, "ys")

		a := stack.Of[int](container.NewVector(xs...))
		b := stack.Of[int](container.NewVector(ys...))

		wantA := stack.Of[int](container.NewVector(ys...))
		wantB := stack.Of[int](container.NewVector(xs...))

		stack.Swap(a, b)

		require.True(t, stack.Equal(a, wantA))
		require.True(t, stack.Equal(b, wantB))
	})
}

func TestStack_PropCompare(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOf(rapid.IntRange(0, 3)).Draw(t, "xs")
		ys := rapid.SliceOf(rapid.IntRange(0, 3)).Draw(t, "ys")

		a := stack.Of[int](container.NewDeque(xs...))
		b := stack.Of[int](container.NewDeque(ys...))

		require.Equal(t, slices.Compare(xs, ys), stack.Compare(a, b))
		require.Equal(t, slices.Equal(xs, ys), stack.Equal(a, b))
	})
}
