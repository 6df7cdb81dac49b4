package stream

import (
	"context"
	"sync/atomic"

	"github.com/sourcegraph/conc/pool"
)

// Consume drains st with the given number of worker goroutines, calling fn
// for every delivered element from whichever worker pulled it. It returns
// once the stream is exhausted or ctx is done, after all workers have
// stopped, with the number of elements handed to fn.
//
// fn must be safe for concurrent use. workers < 1 is treated as 1.
// The returned error is ctx.Err() when consumption stopped early.
func Consume[T any](ctx context.Context, st *Stream[T], workers int, fn func(T)) (int, error) {
	if workers < 1 {
		workers = 1
	}
	var delivered atomic.Int64
	p := pool.New().WithContext(ctx).WithMaxGoroutines(workers)
	for i := 0; i < workers; i++ {
		p.Go(func(ctx context.Context) error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, ok := st.Next()
				if !ok {
					return nil
				}
				fn(v)
				delivered.Add(1)
			}
		})
	}
	err := p.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		// every stopped worker reports the same cancellation
		err = ctxErr
	}

	return int(delivered.Load()), err
}
