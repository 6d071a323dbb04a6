// SPDX-License-Identifier: EPL-2.0

// Package workpool runs one task per index on a bounded set of goroutines.
package workpool

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers returns n when positive, otherwise GOMAXPROCS.
func Workers(n int) int {
	if n > 0 {
		return n
	}

	return runtime.GOMAXPROCS(0)
}

// Run calls task(ctx, i) for every i in [0, n) with at most workers tasks in
// flight and returns once all of them have finished. Tasks write their
// results by index; nothing is appended concurrently.
//
// The first error cancels the context handed to the remaining tasks and is
// returned. A cancelled parent context stops tasks that have not started yet.
func Run(ctx context.Context, workers, n int, task func(ctx context.Context, i int) error) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(workers))

	for i := range n {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			if err := task(gCtx, i); err != nil {
				return fmt.Errorf("task %d: %w", i, err)
			}

			return nil
		})
	}

	return g.Wait()
}
