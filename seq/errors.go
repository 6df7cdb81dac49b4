package seq

import (
	"errors"
	"fmt"
)

// ErrNotScalar indicates that a scalar result was requested from an Operand
// holding a sequence (see MustValue).
var ErrNotScalar = errors.New("seq: operand is not a scalar")

// MustValue returns the constant held by o and panics with ErrNotScalar
// otherwise. Intended for call sites that built o from scalars only.
func MustValue[N Number](o Operand[N]) N {
	v, ok := o.Value()
	if !ok {
		panic(fmt.Errorf("MustValue: %w", ErrNotScalar))
	}

	return v
}
