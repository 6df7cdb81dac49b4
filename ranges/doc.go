// Package ranges produces ordered numeric sequences: inclusive and
// exclusive ranges, unbounded counters and their index-paired variants.
//
// ✨ Key features:
//   - auto step sign: +1 when start < end, −1 otherwise
//   - inclusive (RangeIncl) and exclusive (Range) termination
//   - unbounded counting (RangeFrom) for the "end = +∞" default
//   - (index, value) pairing (IndexedRangeIncl, IndexedRange)
//   - internal batching of up to BatchSize values per refill
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvseq/ranges"
//
//	seq.Collect(ranges.RangeIncl(0, 5)) // [0 1 2 3 4 5]
//	seq.Collect(ranges.RangeIncl(5, 0)) // [5 4 3 2 1 0]
//	seq.Collect(ranges.IndexedRangeIncl(0, 3))
//	// [{0 0} {1 1} {2 2} {3 3}]
//
// Preconditions (not guarded):
//   - A step of 0 never terminates: the start value repeats forever.
//   - An explicit step whose sign disagrees with start→end yields either an
//     empty sequence or, for unbounded ranges, one that never ends.
//
// Complexity: O(1) amortized per element, O(BatchSize) memory per sequence.
package ranges
