package pkg

import "errors"

var (
	ErrEmptyStack     = errors.New("stack is empty")
	ErrUnknownStack   = errors.New("unknown stack")
	ErrStackDeclared  = errors.New("stack already declared")
	ErrUnknownOp      = errors.New("unknown op")
	ErrMissingArg     = errors.New("missing argument")
	ErrBadVersion     = errors.New("unsupported request version")
	ErrUnknownBackend = errors.New("unknown backend")
)
