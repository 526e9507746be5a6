// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import "math"

// Atom is one atom: a world-space center and a van der Waals radius, both
// in Ångström.
type Atom struct {
	X, Y, Z, Radius float64
}

// Init sets every voxel of g to TagSolvent. Ordering is irrelevant, so the
// sweep runs across nthreads goroutines purely to keep the cost of
// re-initializing a large grid off the critical path of a single core.
func (g *Grid) Init(nthreads int) {
	parallelForGrid(g, nthreads, func(iStart, iEnd int) {
		for i := iStart; i < iEnd; i++ {
			for j := 0; j < g.Ny; j++ {
				base := g.Index(i, j, 0)
				row := g.Tags[base : base+g.Nz]
				for k := range row {
					row[k] = TagSolvent
				}
			}
		}
	})
}

// cubeBounds returns the integer voxel cube [loI,hiI]x[loJ,hiJ]x[loK,hiK]
// that must be inspected for a sphere of grid-space center (X,Y,Z) and
// grid-space radius H. Sphere carving (Fill) and interface mapping
// (MapAtomsToSurface) both derive their cube here, following
// original_source/C/SERD.c's fill/_interface, which each repeat the
// floor/ceil pattern inline. AdjustSES does not use it: its cube is
// centered on an integer voxel and has half-width ceil(probe/step).
func cubeBounds(X, Y, Z, H float64) (loI, hiI, loJ, hiJ, loK, hiK int) {
	loI = int(math.Floor(X - H))
	hiI = int(math.Ceil(X + H))
	loJ = int(math.Floor(Y - H))
	hiJ = int(math.Ceil(Y + H))
	loK = int(math.Floor(Z - H))
	hiK = int(math.Ceil(Z + H))
	return
}

// Fill carves every atom's combined (radius+probe) sphere into g as
// TagBulk. It runs in parallel over atoms: every write stores the same
// constant TagBulk, so concurrent writes to the same voxel from different
// atoms are race-free.
func Fill(g *Grid, atoms []Atom, ref Reference, sc SinCos, step, probe float64, nthreads int) {
	parallelFor(len(atoms), nthreads, func(start, end int) {
		for a := start; a < end; a++ {
			atom := atoms[a]
			X, Y, Z := transform(atom.X, atom.Y, atom.Z, ref, step, sc)
			H := (atom.Radius + probe) / step

			loI, hiI, loJ, hiJ, loK, hiK := cubeBounds(X, Y, Z, H)
			for i := loI; i <= hiI; i++ {
				di := float64(i) - X
				for j := loJ; j <= hiJ; j++ {
					dj := float64(j) - Y
					for k := loK; k <= hiK; k++ {
						dk := float64(k) - Z
						dist := math.Sqrt(di*di + dj*dj + dk*dk)
						if dist < H && g.InBounds(i, j, k) {
							g.Set(i, j, k, TagBulk)
						}
					}
				}
			}
		}
	})
}
