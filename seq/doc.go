// Package seq defines the lazy sequence abstraction shared by every
// generator and combinator in lvseq.
//
// 🚀 What is a Seq?
//
//	A Seq[T] is an ordered, possibly infinite production of values that is
//	evaluated on demand: each call to Next computes exactly one element.
//	  • Generators (ranges, oscillate, noise) produce Seqs.
//	  • Combinators (combinator, points) transform one or more Seqs.
//	  • Adapters (stream, tap) wrap any Seq for consumers.
//
// ✨ Contract:
//   - Next returns (value, true) while elements remain and (zero, false)
//     once exhausted; exhaustion is permanent.
//   - A Seq is not rewindable. Calling a constructor again with the same
//     arguments yields a fresh, independent Seq.
//   - A Seq is NOT safe for concurrent use; wrap it with stream.New for
//     multi-goroutine consumption.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvseq/seq"
//
//	s := seq.Of(1, 2, 3)
//	for v := range seq.All(s) {
//		fmt.Println(v)
//	}
//
//	first := seq.Collect(seq.Take(seq.Repeat(7.5), 3)) // [7.5 7.5 7.5]
//
// Scalar-or-sequence arguments are expressed with the Operand variant:
//
//	seq.Scalar(2.0)               // a constant, repeated forever on demand
//	seq.Sequence(seq.Of(1.0, 2.0)) // a finite sequence
package seq
