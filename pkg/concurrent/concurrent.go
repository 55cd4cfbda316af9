package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/svgar/svgar/pkg/sequence"
)

// ParallelMap applies mapFn to each element of the iterator on at most
// workers goroutines and returns the results in input order. The first error
// cancels the context passed to the remaining calls and is returned.
func ParallelMap[T any, R any](ctx context.Context, i *sequence.Iterator[T], workers int, mapFn func(context.Context, T) (R, error)) ([]R, error) {
	in := i.Collect()
	out := make([]R, len(in))

	group, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}

	for idx, val := range in {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := mapFn(ctx, val)
			if err != nil {
				return err
			}
			out[idx] = r
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
