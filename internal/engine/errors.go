package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSolution is the normal failure outcome: the depth budget was
	// exhausted without reaching a complete board.
	ErrNoSolution = errors.New("no solution within depth limit")

	// ErrInvalidMove marks an Assign precondition violation. Propagation
	// never produces one on a well-formed state; seeing it means a bug.
	ErrInvalidMove = errors.New("invalid move")
)

// Fault is a fatal engine error: an invariant that propagation and
// assignment guarantee by construction was observed broken. It carries a
// dump of the offending state instead of terminating the process.
type Fault struct {
	Reason string
	State  string
	Err    error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("engine fault: %s: %v\n%s", f.Reason, f.Err, f.State)
	}
	return fmt.Sprintf("engine fault: %s\n%s", f.Reason, f.State)
}

func (f *Fault) Unwrap() error { return f.Err }

func faultf(b *Board, err error, format string, args ...any) error {
	return &Fault{Reason: fmt.Sprintf(format, args...), State: b.String(), Err: err}
}
