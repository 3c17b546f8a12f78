package script_test

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/larynjahor/lifo/pkg"
	"github.com/larynjahor/lifo/pkg/script"
	"github.com/stretchr/testify/require"
)

func value(v int) *int {
	return &v
}

func TestScript_Validate(t *testing.T) {
	tests := []struct {
		name  string
		steps []script.Step
		want  []error
	}{
		{
			name: "ok",
			steps: []script.Step{
				{Op: script.OpNew, Stack: "a", Values: []int{1}},
				{Op: script.OpPush, Stack: "a", Value: value(2)},
				{Op: script.OpCopy, Stack: "a", Other: "b"},
				{Op: script.OpCompare, Stack: "a", Other: "b"},
				{Op: script.OpMove, Stack: "b", Other: "c"},
				{Op: script.OpSwap, Stack: "a", Other: "c"},
				{Op: script.OpPop, Stack: "c"},
			},
		},
		{
			name: "undeclared",
			steps: []script.Step{
				{Op: script.OpPop, Stack: "a"},
			},
			want: []error{pkg.ErrUnknownStack},
		},
		{
			name: "redeclared",
			steps: []script.Step{
				{Op: script.OpNew, Stack: "a"},
				{Op: script.OpNew, Stack: "a"},
			},
			want: []error{pkg.ErrStackDeclared},
		},
		{
			name: "everything at once",
			steps: []script.Step{
				{Op: script.OpNew, Stack: "a"},
				{Op: script.OpPush, Stack: "a"},
				{Op: "peek", Stack: "a"},
				{Op: script.OpSwap, Stack: "a", Other: "b"},
				{Op: script.OpMove, Stack: "a"},
			},
			want: []error{pkg.ErrMissingArg, pkg.ErrUnknownOp, pkg.ErrUnknownStack, pkg.ErrMissingArg},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &script.Script{
				Name:  tt.name,
				Steps: tt.steps,
			}

			err := s.Validate()
			if len(tt.want) == 0 {
				require.NoError(t, err)
				return
			}

			var merr *multierror.Error
			require.ErrorAs(t, err, &merr)
			require.Len(t, merr.Errors, len(tt.want))

			for i, want := range tt.want {
				require.ErrorIs(t, merr.Errors[i], want)
			}
		})
	}
}
