// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

// FilterNoise strips kept-surface voxels that have no confirmed-surface
// neighbor, stragglers the pruner leaves on component rims. As in
// ExtractSurface, the predicate only inspects TagSurface, a value this
// phase never writes, so in-place update is race-free.
func FilterNoise(g *Grid, nthreads int) {
	parallelForGrid(g, nthreads, func(iStart, iEnd int) {
		for i := iStart; i < iEnd; i++ {
			for j := 0; j < g.Ny; j++ {
				for k := 0; k < g.Nz; k++ {
					if g.At(i, j, k) != TagSolvent {
						continue
					}
					if g.anyNeighbor26(i, j, k, func(tag int32) bool { return tag == TagSurface }) {
						g.Set(i, j, k, TagSolvent)
					} else {
						g.Set(i, j, k, TagBulk)
					}
				}
			}
		}
	})
}
