// SPDX-License-Identifier: MIT
// Package: lvseq/stream
//
// Package stream turns any seq.Seq into a pull operation that many
// goroutines can share.
//
// 🔒 Cursor protocol:
//
//	The stream holds one atomic pointer to the remaining tail of the
//	sequence. Each pull:
//	  1. loads the current tail,
//	  2. realizes its head element (computed at most once per element),
//	  3. compare-and-swaps the tail to its successor,
//	  4. on conflict, retries from step 1.
//
//	No mutex guards the cursor. A caller that loses the race retries with the
//	new tail; it never waits for the winner to return. Step 2 is the one
//	place callers may wait: the first pull of each element runs under that
//	element's sync.Once so the source is never pulled twice.
//
// ✨ Guarantees:
//   - Every element of the source is delivered to exactly one caller,
//     exactly once: nothing is duplicated or skipped under any interleaving.
//   - The source's Next is called exactly once per element (plus once for the
//     terminal pull), so side effects such as tap logging fire once.
//   - Exhaustion is permanent: once Next returns false it always does.
//
// ⚙️ Usage:
//
//	st := stream.New(ranges.RangeIncl(1, 1000))
//	n, err := stream.Consume(ctx, st, 8, func(v int) { /* ... */ })
//
//	next := stream.FromSeq(seq.Of("a", "b")) // plain func() (string, bool)
package stream
