package genetics

import (
	"errors"

	"github.com/grexie/evolve/pkg/rng"
)

var (
	ErrInvalidArgument       = rng.ErrInvalidArgument
	ErrDegenerateInput       = errors.New("degenerate input")
	ErrPreconditionViolation = errors.New("precondition violation")
)
