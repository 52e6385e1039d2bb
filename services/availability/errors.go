package availability

import (
	"errors"
	"fmt"
)

// InfrastructureError means the inventory store itself failed. It is never a
// "fully booked" answer; callers may retry.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func infraError(op string, err error) error {
	var ie *InfrastructureError
	if errors.As(err, &ie) {
		return err
	}
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructure reports whether err came from a failed store call.
func IsInfrastructure(err error) bool {
	var ie *InfrastructureError
	return errors.As(err, &ie)
}
