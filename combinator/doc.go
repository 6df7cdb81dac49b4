// Package combinator provides elementwise and cumulative numeric transforms
// over scalars and lazy sequences.
//
// The package offers the following key components:
//
//   - MulAdd:   add + mul·s, each operand a seq.Operand (scalar or sequence).
//     Scalar-in → scalar-out; any sequence operand → sequence-out whose
//     length is that of the shortest sequence operand.
//   - Tally:    prefix sums of a sequence, offset by an initial amount.
//   - ModRange: reduce a value into [min, max); fails with ErrInvalidRange
//     when min > max.
//
// Errors:
//   - ErrInvalidRange - ModRange called with min > max. Wrapped with the
//     method token, test with errors.Is.
//
// Preconditions (not guarded): ModRange with min == max reduces modulo zero
// and returns an unspecified value.
package combinator
