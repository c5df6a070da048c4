package svg

import (
	"errors"
	"fmt"
)

// ErrUnsupportedInput marks objects the exporter refuses: anything that is
// not a curve, and curves flagged as 3D.
var ErrUnsupportedInput = errors.New("unsupported input")

// UnsupportedError names the rejected object and why.
type UnsupportedError struct {
	Object string
	Reason string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Object, e.Reason)
}

// Is matches ErrUnsupportedInput.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupportedInput
}
