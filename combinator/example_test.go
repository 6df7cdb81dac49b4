package combinator_test

import (
	"fmt"

	"github.com/katalvlaran/lvseq/combinator"
	"github.com/katalvlaran/lvseq/seq"
)

// ExampleMulAdd shows the scalar and sequence modes side by side.
func ExampleMulAdd() {
	scalar := combinator.MulAdd(seq.Scalar(2), seq.Scalar(2), seq.Scalar(1))
	fmt.Println(seq.MustValue(scalar))

	zipped := combinator.MulAdd(seq.Sequence(seq.Of(2, 2)), seq.Sequence(seq.Of(2, 4, 6)), seq.Scalar(1))
	fmt.Println(seq.Collect(zipped.Seq()))
	// Output:
	// 5
	// [5 9]
}

// ExampleModRange wraps values into a half-open interval.
func ExampleModRange() {
	v, _ := combinator.ModRange(7, 0, 5)
	fmt.Println(v)
	_, err := combinator.ModRange(1, 10, 3)
	fmt.Println(err)
	// Output:
	// 2
	// ModRange: min=10 max=3: combinator: invalid range (min > max)
}
