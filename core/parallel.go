// parallel.go — bounded worker-pool parallel-for with a commutative max
// reduction, built on golang.org/x/sync/errgroup. A fixed chunk-per-worker
// split is used rather than a work-stealing scheduler: every chunk owns a
// disjoint index range into the node slice, and every node owns disjoint
// destination edge ids (see doc.go), so no chunk ever contends with
// another. The reduction needs no atomics, only a per-worker local
// maximum folded in after errgroup.Wait.
package core

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelMaxFor runs fn(i) for every i in [0, n), distributing the range
// across up to runtime.GOMAXPROCS(0) goroutines, and returns the maximum of
// 0 and all fn(i) results (negative results never lower it below 0). For
// n == 0 it returns 0 without spawning goroutines.
func parallelMaxFor(n int, fn func(i int) float64) float64 {
	if n == 0 {
		return 0
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (n + workers - 1) / workers
	localMax := make([]float64, workers)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		g.Go(func() error {
			var m float64
			for i := start; i < end; i++ {
				if v := fn(i); v > m {
					m = v
				}
			}
			localMax[w] = m
			return nil
		})
	}
	_ = g.Wait() // fn never returns an error; Wait only serves as the barrier.

	var max float64
	for _, m := range localMax {
		if m > max {
			max = m
		}
	}
	return max
}
