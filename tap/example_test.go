package tap_test

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvseq/seq"
	"github.com/katalvlaran/lvseq/tap"
)

// ExampleTap logs each element as it is pulled.
func ExampleTap() {
	s := tap.Tap("v", seq.Of(1, 2), tap.WithLogger(zap.NewExample()))
	for v := range seq.All(s) {
		fmt.Println("got", v)
	}
	// Output:
	// {"level":"debug","msg":"v 1","index":0}
	// got 1
	// {"level":"debug","msg":"v 2","index":1}
	// got 2
}
