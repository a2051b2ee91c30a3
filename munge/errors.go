package munge

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// InvalidTargetError is returned when a target alias is not recognized.
type InvalidTargetError struct {
	Alias string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf(
		"%q is not a valid target. Valid targets are %v",
		e.Alias,
		strings.Join(Aliases(), ", "),
	)
}

// InvalidValueError is returned when a Go value has no Value representation,
// or when a number can't be expressed as epoch seconds.
type InvalidValueError struct {
	Value  interface{}
	Reason string
}

func (e *InvalidValueError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%v (%T) is not a valid date value: %v", e.Value, e.Value, e.Reason)
	}
	return fmt.Sprintf(
		"%v (%T) is not a valid date value. Valid date values are strings, integers, floats and time.Time",
		e.Value,
		e.Value,
	)
}

// IsInvalidTarget reports whether err, or the error it wraps, is an
// InvalidTargetError.
func IsInvalidTarget(err error) bool {
	_, ok := errors.Cause(err).(*InvalidTargetError)
	return ok
}

// IsInvalidValue reports whether err, or the error it wraps, is an
// InvalidValueError.
func IsInvalidValue(err error) bool {
	_, ok := errors.Cause(err).(*InvalidValueError)
	return ok
}
