// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

// parallelFor splits [0,n) into nthreads contiguous chunks and runs work on
// each chunk in its own goroutine, waiting for all of them to finish before
// returning. This is the same goroutine-plus-rendezvous-channel idiom
// tests/solid/bhatti_test.go uses to run several analyses concurrently
// (spawn one goroutine per unit of work, signal completion on a channel,
// drain the channel n times), applied here to data-parallel sweeps over
// atoms or grid voxels.
func parallelFor(n, nthreads int, work func(start, end int)) {
	if n <= 0 {
		return
	}
	if nthreads < 1 {
		nthreads = 1
	}
	if nthreads > n {
		nthreads = n
	}

	chunk := (n + nthreads - 1) / nthreads
	done := make(chan int, nthreads)
	nchunks := 0
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		nchunks++
		go func(s, e int) {
			work(s, e)
			done <- 1
		}(start, end)
	}
	for i := 0; i < nchunks; i++ {
		<-done
	}
}

// parallelForGrid is parallelFor specialized to sweep the outer (i) index of
// a Grid, so every goroutine sweeps a contiguous, non-overlapping range of
// i-planes. Init, AdjustSES, ExtractSurface, FilterNoise, and the final
// rewrite of PruneEnclosed all use this to partition the grid across
// nthreads. Only Init and the Pass B / rewrite sweeps stay inside their own
// planes; the stages that inspect 26-neighbors read voxels in adjacent
// planes, and AdjustSES's Pass A also writes up to ceil(probe/step) planes
// beyond its own range.
func parallelForGrid(g *Grid, nthreads int, work func(iStart, iEnd int)) {
	parallelFor(g.Nx, nthreads, work)
}
