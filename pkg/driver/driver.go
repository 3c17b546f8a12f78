package driver

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"

	"github.com/larynjahor/lifo/alloc"
	"github.com/larynjahor/lifo/container"
	"github.com/larynjahor/lifo/internal/config"
	"github.com/larynjahor/lifo/pkg"
	"github.com/larynjahor/lifo/pkg/script"
	"github.com/larynjahor/lifo/stack"
	"golang.org/x/mod/semver"
	"golang.org/x/sync/errgroup"
)

func New(cfg config.Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var a alloc.Allocator[int]

	switch cfg.Allocator {
	case config.AllocatorPool:
		a = alloc.NewPool[int]()
	default:
		a = alloc.NewHeap[int]()
	}

	return &Driver{
		cfg:   cfg,
		alloc: alloc.NewCounted(a),
	}, nil
}

// Driver runs batches of stack scripts. Scripts in a batch share nothing but
// the allocator and run concurrently.
type Driver struct {
	cfg   config.Config
	alloc *alloc.Counted[int]
}

func (d *Driver) Stats() alloc.Stats {
	return d.alloc.Stats()
}

func (d *Driver) Do(ctx context.Context, req *script.Request) (*script.Response, error) {
	if !semver.IsValid(req.Version) || semver.Major(req.Version) != "v1" {
		return nil, fmt.Errorf("%w [%s]", pkg.ErrBadVersion, req.Version)
	}

	backend := cmp.Or(req.Backend, d.cfg.Backend)

	run, err := d.runner(backend)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "running batch", slog.String("backend", backend), slog.Int("scripts", len(req.Scripts)))

	resp := &script.Response{
		Results: make([]script.Result, len(req.Scripts)),
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(d.cfg.Parallelism)

	for i := range req.Scripts {
		eg.Go(func() error {
			res, err := run(ctx, &req.Scripts[i])
			if err != nil {
				return fmt.Errorf("script %s: %w", req.Scripts[i].Name, err)
			}

			resp.Results[i] = res

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	stats := d.alloc.Stats()

	slog.DebugContext(
		ctx,
		"batch done",
		slog.Int64("allocations", stats.Allocations),
		slog.Int64("deallocations", stats.Deallocations),
		slog.Int64("outstanding", stats.Outstanding),
	)

	return resp, nil
}

type runFunc func(ctx context.Context, s *script.Script) (script.Result, error)

func (d *Driver) runner(backend string) (runFunc, error) {
	switch backend {
	case config.BackendDeque:
		return func(ctx context.Context, s *script.Script) (script.Result, error) {
			return run(ctx, s, func(vals ...int) *container.Deque[int] {
				return container.NewDequeWithBlockSize[int](d.alloc, d.cfg.BlockSize, vals...)
			})
		}, nil
	case config.BackendVector:
		return func(ctx context.Context, s *script.Script) (script.Result, error) {
			return run(ctx, s, func(vals ...int) *container.Vector[int] {
				return container.NewVectorWithAllocator[int](d.alloc, vals...)
			})
		}, nil
	default:
		return nil, fmt.Errorf("%w [%s]", pkg.ErrUnknownBackend, backend)
	}
}

// run executes one script. Step failures are reported in the result; only
// cancellation aborts the script with an error.
func run[C container.Iterable[int, C]](
	ctx context.Context,
	s *script.Script,
	newC func(vals ...int) C,
) (script.Result, error) {
	logger := slog.With(slog.String("script", s.Name))

	res := script.Result{
		Name: s.Name,
	}

	if err := s.Validate(); err != nil {
		logger.WarnContext(ctx, "invalid script", slog.Any("err", err))

		res.Error = err.Error()

		return res, nil
	}

	state := &state[C]{
		stacks: make(map[string]*stack.Stack[int, C], 8),
		newC:   newC,
	}

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		out := script.Output{
			Step: i,
			Op:   step.Op,
		}

		if err := state.apply(step, &out); err != nil {
			logger.DebugContext(ctx, "step failed", slog.Int("step", i), slog.Any("err", err))

			out.Error = err.Error()
		}

		res.Outputs = append(res.Outputs, out)
	}

	return res, nil
}

type state[C container.Iterable[int, C]] struct {
	stacks map[string]*stack.Stack[int, C]
	newC   func(vals ...int) C
}

func (st *state[C]) apply(step script.Step, out *script.Output) error {
	if step.Op == script.OpNew {
		st.stacks[step.Stack] = stack.Of[int](st.newC(step.Values...))

		return nil
	}

	s := st.stacks[step.Stack]

	switch step.Op {
	case script.OpPush:
		s.Push(*step.Value)
	case script.OpEmplace:
		s.Emplace(func(p *int) {
			*p = *step.Value
		})
	case script.OpPop, script.OpTop:
		if s.Empty() {
			return pkg.ErrEmptyStack
		}

		var v int
		if step.Op == script.OpPop {
			v = s.Pop()
		} else {
			v = s.Top()
		}

		out.Value = &v
	case script.OpSize:
		n := s.Size()
		out.Size = &n
	case script.OpEmpty:
		e := s.Empty()
		out.Empty = &e
	case script.OpSwap:
		s.Swap(st.stacks[step.Other])
	case script.OpCopy:
		st.stacks[step.Other] = s.Clone()
	case script.OpMove:
		st.stacks[step.Other] = s.Move()
	case script.OpCompare:
		other := st.stacks[step.Other]

		order := stack.Compare(s, other)
		equal := stack.Equal(s, other)

		out.Order = &order
		out.Equal = &equal
	default:
		return fmt.Errorf("%w [%s]", pkg.ErrUnknownOp, step.Op)
	}

	return nil
}
