// Package points packs sequences of 2-D and 3-D points into sequences of
// flattened line segments, ready to be splatted into a line-draw call.
//
// Three input layouts are supported, each a distinct named operation:
//
//   - Join2 / Join3:   one sequence of points ([2]N or [3]N); consecutive
//     pairs become segments, so n points give n−1 segments.
//   - JoinXY:          two parallel coordinate sequences (xs, ys).
//   - JoinXYZ:         three parallel coordinate sequences (xs, ys, zs).
//
// Segment i of every form is point i followed by point i+1:
//
//	Segment2: [x1, y1, x2, y2]
//	Segment3: [x1, y1, z1, x2, y2, z2]
//
// Parallel forms stop as soon as any coordinate sequence has no further
// successor. All forms are lazy; infinite inputs give infinite outputs.
//
// ⚙️ Usage:
//
//	segs := points.JoinXY(seq.Of(1, 2, 3), seq.Of(4, 5, 6))
//	for s := range seq.All(segs) {
//		drawLine(s.Args()...) // (x1, y1, x2, y2)
//	}
package points
