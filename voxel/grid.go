// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package voxel computes the solvent-exposed surface of a biomolecule on a
// discrete three-dimensional voxel grid: grid initialization, sphere
// rasterization, optional SAS-to-SES shrinkage, surface extraction,
// flood-fill pocket removal, noise filtering, and atom-to-surface mapping.
package voxel

import (
	"github.com/cpmech/gosl/chk"
)

// Tag values for a voxel. The zero value is TagBulk, so freshly allocated
// storage reads as all bulk; grids must be initialized with Init before any
// other stage runs.
const (
	TagBulk    int32 = 0  // inside the biomolecule
	TagSolvent int32 = 1  // outside / unclustered surface candidate
	TagSurface int32 = -1 // confirmed surface voxel (solvent with no bulk neighbor)
	tagSESMark int32 = -2 // SES scratch: bulk within probe of a surface-adjacent solvent voxel

	firstClusterTag int32 = 2 // first cluster tag assigned by the pruner
)

// Grid is a mutable three-dimensional voxel lattice. Voxel (i,j,k) lives at
// linear index k + nz*(j + ny*i). The caller owns Tags; Grid never
// reallocates it.
type Grid struct {
	Nx, Ny, Nz int
	Tags       []int32
}

// NewGrid wraps caller-allocated voxel storage of length nx*ny*nz. It
// returns a degenerate-input error if the shape is not strictly positive
// or the storage does not match.
func NewGrid(tags []int32, nx, ny, nz int) (*Grid, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, chk.Err("grid shape must be strictly positive: nx=%d, ny=%d, nz=%d", nx, ny, nz)
	}
	size := nx * ny * nz
	if len(tags) != size {
		return nil, chk.Err("grid storage length %d does not match nx*ny*nz=%d", len(tags), size)
	}
	return &Grid{Nx: nx, Ny: ny, Nz: nz, Tags: tags}, nil
}

// Index returns the linear storage index for voxel (i,j,k). Callers must
// check InBounds first; Index does not clip.
func (g *Grid) Index(i, j, k int) int {
	return k + g.Nz*(j+g.Ny*i)
}

// InBounds reports whether (i,j,k) lies within [0,Nx)x[0,Ny)x[0,Nz).
func (g *Grid) InBounds(i, j, k int) bool {
	return i >= 0 && i < g.Nx && j >= 0 && j < g.Ny && k >= 0 && k < g.Nz
}

// At returns the tag at (i,j,k). The caller must ensure InBounds.
func (g *Grid) At(i, j, k int) int32 {
	return g.Tags[g.Index(i, j, k)]
}

// Set stores tag at (i,j,k). The caller must ensure InBounds.
func (g *Grid) Set(i, j, k int, tag int32) {
	g.Tags[g.Index(i, j, k)] = tag
}

// onOuterFace reports whether (i,j,k) lies on one of the six boundary faces
// of the grid. The flood-fill pruner treats these voxels as an
// absorbing boundary: they are never claimed by a cluster.
func (g *Grid) onOuterFace(i, j, k int) bool {
	return i == 0 || i == g.Nx-1 || j == 0 || j == g.Ny-1 || k == 0 || k == g.Nz-1
}

// neighbors26 invokes fn for every voxel in the 3x3x3 cube centered at
// (i,j,k), including (i,j,k) itself (harmless to the callers below),
// skipping out-of-bounds positions silently.
func (g *Grid) neighbors26(i, j, k int, fn func(x, y, z int)) {
	for x := i - 1; x <= i+1; x++ {
		for y := j - 1; y <= j+1; y++ {
			for z := k - 1; z <= k+1; z++ {
				if g.InBounds(x, y, z) {
					fn(x, y, z)
				}
			}
		}
	}
}

// anyNeighbor26 reports whether any of the (in-bounds) 26-neighbors of
// (i,j,k) satisfies pred.
func (g *Grid) anyNeighbor26(i, j, k int, pred func(tag int32) bool) bool {
	found := false
	g.neighbors26(i, j, k, func(x, y, z int) {
		if !found && pred(g.At(x, y, z)) {
			found = true
		}
	})
	return found
}
