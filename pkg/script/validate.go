package script

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/larynjahor/lifo/container"
	"github.com/larynjahor/lifo/pkg"
)

// Validate walks the steps in order and reports every problem it finds.
func (s *Script) Validate() error {
	var result *multierror.Error

	declared := container.NewSet[string](len(s.Steps))

	need := func(i int, name string) {
		if name == "" {
			result = multierror.Append(result, fmt.Errorf("step %d: %w: stack name", i, pkg.ErrMissingArg))
			return
		}

		if !declared.Contains(name) {
			result = multierror.Append(result, fmt.Errorf("step %d: %w [%s]", i, pkg.ErrUnknownStack, name))
		}
	}

	for i, step := range s.Steps {
		switch step.Op {
		case OpNew:
			switch {
			case step.Stack == "":
				result = multierror.Append(result, fmt.Errorf("step %d: %w: stack name", i, pkg.ErrMissingArg))
			case declared.Contains(step.Stack):
				result = multierror.Append(result, fmt.Errorf("step %d: %w [%s]", i, pkg.ErrStackDeclared, step.Stack))
			default:
				declared.Add(step.Stack)
			}
		case OpPush, OpEmplace:
			need(i, step.Stack)

			if step.Value == nil {
				result = multierror.Append(result, fmt.Errorf("step %d: %w: value", i, pkg.ErrMissingArg))
			}
		case OpPop, OpTop, OpSize, OpEmpty:
			need(i, step.Stack)
		case OpSwap, OpCompare:
			need(i, step.Stack)
			need(i, step.Other)
		case OpCopy, OpMove:
			need(i, step.Stack)

			if step.Other == "" {
				result = multierror.Append(result, fmt.Errorf("step %d: %w: other", i, pkg.ErrMissingArg))
			} else {
				declared.Add(step.Other)
			}
		default:
			result = multierror.Append(result, fmt.Errorf("step %d: %w [%s]", i, pkg.ErrUnknownOp, step.Op))
		}
	}

	return result.ErrorOrNil()
}
