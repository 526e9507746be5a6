// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import "math"

// AdjustSES shrinks the solvent cavity by the probe radius, turning a
// solvent-accessible shell into a solvent-excluded one.
// It runs two sequenced passes over g; all of Pass A's writes complete
// before Pass B reads any of them.
//
// Pass A marks, for every solvent voxel adjacent to bulk or to an
// already-marked voxel, every bulk voxel within probe/step of it as
// tagSESMark. Writes are monotonic (TagBulk -> tagSESMark only), so
// concurrent writers setting the same voxel to the same value are benign;
// treating tagSESMark voxels as interface extenders lets the shell thicken
// within the same sweep.
//
// Pass B promotes every tagSESMark voxel back to TagSolvent.
func AdjustSES(g *Grid, step, probe float64, nthreads int) {
	limit := probe / step
	aux := int(math.Ceil(limit))

	parallelForGrid(g, nthreads, func(iStart, iEnd int) {
		for i := iStart; i < iEnd; i++ {
			for j := 0; j < g.Ny; j++ {
				for k := 0; k < g.Nz; k++ {
					if g.At(i, j, k) != TagSolvent {
						continue
					}
					if !g.anyNeighbor26(i, j, k, func(tag int32) bool {
						return tag == TagBulk || tag == tagSESMark
					}) {
						continue
					}
					for i2 := i - aux; i2 <= i+aux; i2++ {
						di := float64(i - i2)
						for j2 := j - aux; j2 <= j+aux; j2++ {
							dj := float64(j - j2)
							for k2 := k - aux; k2 <= k+aux; k2++ {
								if !g.InBounds(i2, j2, k2) {
									continue
								}
								if g.At(i2, j2, k2) != TagBulk {
									continue
								}
								dk := float64(k - k2)
								dist := math.Sqrt(di*di + dj*dj + dk*dk)
								if dist < limit {
									g.Set(i2, j2, k2, tagSESMark)
								}
							}
						}
					}
				}
			}
		}
	})

	parallelForGrid(g, nthreads, func(iStart, iEnd int) {
		for i := iStart; i < iEnd; i++ {
			for j := 0; j < g.Ny; j++ {
				base := g.Index(i, j, 0)
				row := g.Tags[base : base+g.Nz]
				for k := range row {
					if row[k] == tagSESMark {
						row[k] = TagSolvent
					}
				}
			}
		}
	})
}
