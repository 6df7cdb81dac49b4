package points

import "github.com/katalvlaran/lvseq/seq"

// Point2 is an (x, y) tuple.
type Point2[N seq.Number] [2]N

// Point3 is an (x, y, z) tuple.
type Point3[N seq.Number] [3]N

// Segment2 is a flattened 2-D line segment: x1, y1, x2, y2.
type Segment2[N seq.Number] [4]N

// Segment3 is a flattened 3-D line segment: x1, y1, z1, x2, y2, z2.
type Segment3[N seq.Number] [6]N

// Args returns the segment as a slice in draw-primitive argument order.
func (s Segment2[N]) Args() []N { return s[:] }

// Args returns the segment as a slice in draw-primitive argument order.
func (s Segment3[N]) Args() []N { return s[:] }

// Points returns the two endpoints of s.
func (s Segment2[N]) Points() (Point2[N], Point2[N]) {
	return Point2[N]{s[0], s[1]}, Point2[N]{s[2], s[3]}
}

// Points returns the two endpoints of s.
func (s Segment3[N]) Points() (Point3[N], Point3[N]) {
	return Point3[N]{s[0], s[1], s[2]}, Point3[N]{s[3], s[4], s[5]}
}
