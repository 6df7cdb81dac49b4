package combinator

import (
	"errors"
	"fmt"
)

// MethodModRange is the canonical name used to prefix ModRange errors.
const MethodModRange = "ModRange"

// ErrInvalidRange indicates a range whose lower bound exceeds its upper bound.
// Usage: if errors.Is(err, ErrInvalidRange) { /* swap or reject bounds */ }.
var ErrInvalidRange = errors.New("combinator: invalid range (min > max)")

// wrapf attaches "<method>: <detail>" context to a sentinel, keeping it
// matchable with errors.Is.
func wrapf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
