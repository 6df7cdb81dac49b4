package points_test

import (
	"fmt"

	"github.com/katalvlaran/lvseq/points"
	"github.com/katalvlaran/lvseq/seq"
)

// ExampleJoinXY packs parallel coordinates into line segments.
func ExampleJoinXY() {
	for s := range seq.All(points.JoinXY(seq.Of(1, 2, 3), seq.Of(4, 5, 6))) {
		fmt.Println(s.Args())
	}
	// Output:
	// [1 4 2 5]
	// [2 5 3 6]
}

// ExampleJoin3 joins consecutive 3-D points.
func ExampleJoin3() {
	pts := seq.Of(
		points.Point3[int]{0, 0, 0},
		points.Point3[int]{1, 1, 1},
		points.Point3[int]{2, 0, 2},
	)
	fmt.Println(seq.Collect(points.Join3(pts)))
	// Output:
	// [[0 0 0 1 1 1] [1 1 1 2 0 2]]
}
