package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode marks a branch that a valid state never takes,
	// such as the fallback case of an exhaustive match.
	ErrUnreachableCode struct {
		Caller string
		State  any
	}
)

func (r ErrUnreachableCode) Error() string {
	if r.State == nil {
		return fmt.Sprintf("%s: unreachable code", r.Caller)
	}
	return fmt.Sprintf("%s: unreachable code with state %v", r.Caller, r.State)
}
