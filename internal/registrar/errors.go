package registrar

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDependencyManager indicates the dependency manager is not on PATH
	ErrMissingDependencyManager = errors.New("dependency manager not found")
	// ErrMissingConfiguration indicates the project's key/settings file is absent
	ErrMissingConfiguration = errors.New("configuration file not found")
)

// PreconditionError reports an install precondition the user must fix.
// It unwraps to one of the sentinel errors above.
type PreconditionError struct {
	Err    error
	Detail string
	Hint   string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// Hint returns the remediation text for a precondition failure, or "" for
// any other error
func Hint(err error) string {
	var pe *PreconditionError
	if errors.As(err, &pe) {
		return pe.Hint
	}
	return ""
}
