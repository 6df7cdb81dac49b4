package combinator

import (
	"math"

	"github.com/katalvlaran/lvseq/seq"
)

// ModRange reduces val into [min, max).
//
//   - min >= 0: ((val − min) mod (max − min)) + min.
//   - min < 0:  the range is shifted up by |min| to [0, max+|min|), val is
//     reduced modulo the shifted upper bound and the result is shifted back
//     down by |min|.
//
// The modulo is floored (the result takes the sign of the divisor).
//
//	ModRange(7, 0, 5)   → 2
//	ModRange(-1, -5, 5) → 4
//
// Errors: ErrInvalidRange when min > max.
// Precondition: min != max.
func ModRange[N seq.Number](val, min, max N) (N, error) {
	if min > max {
		var zero N
		return zero, wrapf(MethodModRange, ErrInvalidRange, "min=%v max=%v", min, max)
	}
	if min < 0 {
		shift := -min

		return floorMod(val, max+shift) - shift, nil
	}

	if val < min {
		// measure below min so unsigned types never wrap
		r := max - floorMod(min-val, max-min)
		if r >= max {
			return min, nil
		}

		return r, nil
	}

	return floorMod(val-min, max-min) + min, nil
}

// MustModRange is ModRange for arguments known to be valid; it panics on
// ErrInvalidRange.
func MustModRange[N seq.Number](val, min, max N) N {
	v, err := ModRange(val, min, max)
	if err != nil {
		panic(err)
	}

	return v
}

// floorMod returns a mod b with the sign of b. Integer operands go through
// float64, which is exact for magnitudes below 2^53.
func floorMod[N seq.Number](a, b N) N {
	r := N(math.Mod(float64(a), float64(b)))
	if r != 0 && (r < 0) != (b < 0) {
		r += b
		// a tiny negative float can round up to b itself
		if r == b {
			r = 0
		}
	}

	return r
}
