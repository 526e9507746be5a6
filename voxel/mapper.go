// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import "math"

// MapAtomsToSurface tests, for every atom, whether any kept surface voxel
// lies within its (radius+probe) sphere, and returns the touching atom
// indices in strictly ascending order.
//
// original_source/C/SERD.c accumulates matches into a sorted singly-linked
// list; a boolean bitset followed by one ascending sweep is simpler and
// equivalent, which is what this does. Atoms are processed in parallel,
// but parallelFor hands each goroutine a disjoint, contiguous range of
// atom indices, so each goroutine only ever writes to its own slice of
// `touched`, so no shared-accumulator synchronization is needed.
func MapAtomsToSurface(g *Grid, atoms []Atom, ref Reference, sc SinCos, step, probe float64, nthreads int) []int {
	touched := make([]bool, len(atoms))

	parallelFor(len(atoms), nthreads, func(start, end int) {
		for a := start; a < end; a++ {
			atom := atoms[a]
			X, Y, Z := transform(atom.X, atom.Y, atom.Z, ref, step, sc)
			H := (atom.Radius + probe) / step

			loI, hiI, loJ, hiJ, loK, hiK := cubeBounds(X, Y, Z, H)
		cube:
			for i := loI; i <= hiI; i++ {
				di := float64(i) - X
				for j := loJ; j <= hiJ; j++ {
					dj := float64(j) - Y
					for k := loK; k <= hiK; k++ {
						if !g.InBounds(i, j, k) || g.At(i, j, k) != TagSolvent {
							continue
						}
						dk := float64(k) - Z
						dist := math.Sqrt(di*di + dj*dj + dk*dk)
						if dist <= H {
							touched[a] = true
							break cube
						}
					}
				}
			}
		}
	})

	indices := make([]int, 0, len(atoms))
	for a, ok := range touched {
		if ok {
			indices = append(indices, a)
		}
	}
	return indices
}
