package oscillate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvseq/seq"
)

// ErrUnknownDirection is returned when parsing a Direction other than
// "up" or "down".
var ErrUnknownDirection = errors.New("oscillate: unknown direction")

// Direction is the current heading of a Cycle.
type Direction int8

const (
	// Up moves towards Max by the increment step.
	Up Direction = iota
	// Down moves towards Min by the decrement step.
	Down
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Down {
		return "down"
	}

	return "up"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; it accepts "up" and
// "down".
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "up":
		*d = Up
	case "down":
		*d = Down
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirection, text)
	}

	return nil
}

// DefaultCycleStep is the step used by CycleBetween in both directions.
const DefaultCycleStep = 1

// CycleOptions configures NewCycle.
//
// Fields:
//   - Start     - first emitted value; expected within [Min, Max].
//   - Min, Max  - inclusive bounds.
//   - Inc, Dec  - step magnitudes for the up and down directions; negative
//     values are coerced to their absolute value. A sequence operand is
//     pulled each time its step is needed and the cycle ends when it runs out.
//   - Direction - initial heading.
//
// Example:
//
//	s := oscillate.NewCycle(oscillate.CycleOptions[float64]{
//		Start: 2, Min: 0, Max: 10,
//		Inc:   seq.Scalar(1.0),
//		Dec:   seq.Scalar(0.5),
//		Direction: oscillate.Down,
//	})
type CycleOptions[N seq.Number] struct {
	Start     N
	Min       N
	Max       N
	Inc       seq.Operand[N]
	Dec       seq.Operand[N]
	Direction Direction
}
