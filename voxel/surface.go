// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

// ExtractSurface keeps every TagSolvent voxel touching TagBulk as
// TagSolvent (a candidate-surface voxel the pruner will cluster) and
// reclassifies every other TagSolvent voxel, the ones with no bulk
// neighbor at all, as TagSurface. The predicate only ever inspects
// TagBulk, a value this phase never writes, so the update can be made in
// place without a double buffer: whether a neighbor has already been
// rewritten in this same sweep is irrelevant to the test.
func ExtractSurface(g *Grid, nthreads int) {
	parallelForGrid(g, nthreads, func(iStart, iEnd int) {
		for i := iStart; i < iEnd; i++ {
			for j := 0; j < g.Ny; j++ {
				for k := 0; k < g.Nz; k++ {
					if g.At(i, j, k) != TagSolvent {
						continue
					}
					if g.anyNeighbor26(i, j, k, func(tag int32) bool { return tag == TagBulk }) {
						g.Set(i, j, k, TagSolvent)
					} else {
						g.Set(i, j, k, TagSurface)
					}
				}
			}
		}
	})
}
