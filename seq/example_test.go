package seq_test

import (
	"fmt"

	"github.com/katalvlaran/lvseq/seq"
)

// ExampleAll ranges over a finite sequence.
func ExampleAll() {
	for v := range seq.All(seq.Of("x", "y", "z")) {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: x y z
}

// ExampleTake bounds an infinite sequence.
func ExampleTake() {
	fmt.Println(seq.Collect(seq.Take(seq.Repeat(1.5), 3)))
	// Output: [1.5 1.5 1.5]
}
