// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

// clusterThreshold bounds the recursion depth of the flood-fill marker:
// once a single burst reaches this many voxels, marking continues
// iteratively (full-grid rescans, each starting a fresh bounded burst)
// instead of recursively.
const clusterThreshold = 10000

// pruner carries one cluster's flood-fill control state. Keeping tag,
// points, and big instance-local rather than process-wide globals (as
// original_source/C/SERD.c has them) means concurrent pipeline runs never
// share mutable state; a struct instantiated fresh per cluster achieves
// that.
type pruner struct {
	g      *Grid
	tag    int32
	points int // voxels claimed by the current burst
	total  int // voxels claimed by the cluster across all bursts
	big    bool
}

// mark is the recursive flood-fill marker. It claims (i,j,k) for p.tag if
// it is an in-bounds, non-boundary, unclustered (TagSolvent) voxel and the
// current burst has not yet hit clusterThreshold, then recurses into all
// 26 neighbors.
func (p *pruner) mark(i, j, k int) {
	if !p.g.InBounds(i, j, k) || p.g.onOuterFace(i, j, k) {
		return
	}
	if p.big || p.g.At(i, j, k) != TagSolvent {
		return
	}
	p.g.Set(i, j, k, p.tag)
	p.points++
	if p.points == clusterThreshold {
		p.big = true
		return
	}
	for x := i - 1; x <= i+1; x++ {
		for y := j - 1; y <= j+1; y++ {
			for z := k - 1; z <= k+1; z++ {
				p.mark(x, y, z)
			}
		}
	}
}

// resume completes a cluster that exceeded clusterThreshold by rescanning
// the full grid, looking for unclustered voxels adjacent to one already
// tagged with p.tag, and resuming mark from each with a fresh
// clusterThreshold budget. It repeats until a full rescan claims nothing
// new, trading stack depth for extra grid sweeps; p.total accumulates the
// true cluster size across every burst.
func (p *pruner) resume() {
	for p.big {
		p.big = false
		claimed := false
		for i := 0; i < p.g.Nx; i++ {
			for j := 0; j < p.g.Ny; j++ {
				for k := 0; k < p.g.Nz; k++ {
					if p.g.At(i, j, k) != TagSolvent {
						continue
					}
					if !p.g.anyNeighbor26(i, j, k, func(t int32) bool { return t == p.tag }) {
						continue
					}
					p.big = false
					p.points = 0
					p.mark(i, j, k)
					p.total += p.points
					if p.points > 0 {
						claimed = true
					}
				}
			}
		}
		p.big = claimed
	}
}

// PruneEnclosed clusters connected TagSolvent voxels under 26-connectivity,
// then keeps only the clusters policyName selects, converting them back to
// TagSolvent; every other cluster becomes TagBulk. Clustering is strictly
// single-threaded (the tag/points/big control state is inherently
// sequential); the final tag-rewrite sweep runs across nthreads goroutines.
func PruneEnclosed(g *Grid, policyName string, nthreads int) error {
	policy, err := GetClusterPolicy(policyName)
	if err != nil {
		return err
	}

	tag := int32(1)
	var clusters []ClusterStats

	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				if g.At(i, j, k) != TagSolvent || g.onOuterFace(i, j, k) {
					continue
				}
				tag++
				p := &pruner{g: g, tag: tag}
				p.mark(i, j, k)
				p.total = p.points
				p.resume()
				clusters = append(clusters, ClusterStats{Tag: tag, Points: p.total})
			}
		}
	}

	keep := policy(clusters)

	parallelForGrid(g, nthreads, func(iStart, iEnd int) {
		for i := iStart; i < iEnd; i++ {
			for j := 0; j < g.Ny; j++ {
				for k := 0; k < g.Nz; k++ {
					t := g.At(i, j, k)
					if t < firstClusterTag {
						continue
					}
					if keep[t] {
						g.Set(i, j, k, TagSolvent)
					} else {
						g.Set(i, j, k, TagBulk)
					}
				}
			}
		}
	})

	return nil
}
