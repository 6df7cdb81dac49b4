// Package oscillate produces sequences by repeated additive or bounded
// bounce-back transformation, plus lazy periodic waves.
//
// The package offers:
//
//   - Stepping:
//     – Steps:             start, start+s₁, start+s₁+s₂, … with a constant
//     or sequence step (seq.Operand).
//   - Bounded oscillation (Cycle):
//     – CycleBetween:      min↔max, step 1, starting at min going up.
//     – CycleBetweenStep:  one step for both directions.
//     – CycleBetweenSteps: independent up/down steps, start = min.
//     – CycleFrom:         every knob explicit.
//     – NewCycle:          options struct; steps may be sequences.
//   - Waves (functional options, see options.go):
//     – Pulse:             rectangular or triangular pulse train.
//     – Chirp:             linear frequency sweep sinusoid.
//
// Guarantees:
//
//   - Every constructor returns a fresh lazy sequence; nothing is computed
//     before it is demanded.
//   - A cycle with scalar steps is infinite and never leaves [min, max] as
//     long as each step is no wider than max − min.
//   - Option constructors panic on meaningless values; generators never do.
//
// Preconditions (not guarded): min <= max for cycles; min == max with a
// non-zero step bounces outside the range on the first move.
package oscillate
