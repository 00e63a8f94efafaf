package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"datafaker/internal/row"
)

// ctxCheckEvery bounds how many rows a worker builds between cancellation
// checks.
const ctxCheckEvery = 1024

// generate builds rows for ids first..first+n-1 in id order. Rows are pure
// functions of (seed, id), so workers split the range without coordination.
func generate(ctx context.Context, asm row.Assembler, seed string, first uint32, n, workers int) ([][]any, error) {
	out := make([][]any, n)
	workers = max(1, min(workers, n))
	chunk := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%ctxCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				r := asm.Assemble(seed, first+uint32(i))
				out[i] = r.Values()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
