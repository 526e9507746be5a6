// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DefaultClusterPolicy is the cluster-selection policy used when the caller
// does not ask for an alternative; it reproduces original_source/C/SERD.c's
// reference behavior exactly.
const DefaultClusterPolicy = "first"

func validateShape(nx, ny, nz, nthreads int, step float64) error {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return chk.Err("grid shape must be strictly positive: nx=%d, ny=%d, nz=%d", nx, ny, nz)
	}
	if step <= 0 {
		return chk.Err("step must be positive, got %g", step)
	}
	if nthreads <= 0 {
		return chk.Err("nthreads must be positive, got %d", nthreads)
	}
	return nil
}

// Surface classifies every voxel of grid into solvent, bulk, or surface,
// optionally shrinking the solvent-accessible surface into a
// solvent-excluded one, then prunes enclosed pockets and isolated noise.
// grid must already be nx*ny*nz long and caller-allocated.
func Surface(grid []int32, nx, ny, nz int, atoms []Atom, ref Reference, sc SinCos, step, probe float64, isSES bool, nthreads int, verbose bool) error {
	return SurfaceWithPolicy(grid, nx, ny, nz, atoms, ref, sc, step, probe, isSES, nthreads, verbose, DefaultClusterPolicy)
}

// SurfaceWithPolicy is Surface with an explicit cluster-selection policy
// name (registered via RegisterClusterPolicy); see voxel/policy.go.
func SurfaceWithPolicy(grid []int32, nx, ny, nz int, atoms []Atom, ref Reference, sc SinCos, step, probe float64, isSES bool, nthreads int, verbose bool, policyName string) error {
	if err := validateShape(nx, ny, nz, nthreads, step); err != nil {
		return err
	}
	if probe < 0 {
		return chk.Err("probe must be non-negative, got %g", probe)
	}

	g, err := NewGrid(grid, nx, ny, nz)
	if err != nil {
		return err
	}

	if verbose && !isSES {
		io.Pf("> Adjusting SAS surface\n")
	}
	g.Init(nthreads)
	Fill(g, atoms, ref, sc, step, probe, nthreads)

	if isSES {
		if verbose {
			io.Pf("> Adjusting SES surface\n")
		}
		AdjustSES(g, step, probe, nthreads)
	}

	if verbose {
		io.Pf("> Defining surface points\n")
	}
	ExtractSurface(g, nthreads)

	if verbose {
		io.Pf("> Filtering enclosed regions\n")
	}
	if err := PruneEnclosed(g, policyName, nthreads); err != nil {
		return err
	}
	FilterNoise(g, nthreads)

	return nil
}

// Interface returns, in ascending atom-index order, the residue identifiers
// (from pdb) of every atom whose sphere touches a kept surface voxel. grid
// must already have been populated by Surface (or SurfaceWithPolicy).
func Interface(grid []int32, nx, ny, nz int, pdb []string, atoms []Atom, ref Reference, sc SinCos, step, probe float64, nthreads int, verbose bool) ([]string, error) {
	if err := validateShape(nx, ny, nz, nthreads, step); err != nil {
		return nil, err
	}
	if probe < 0 {
		return nil, chk.Err("probe must be non-negative, got %g", probe)
	}
	if len(pdb) < len(atoms) {
		return nil, chk.Err("residue table has %d entries but there are %d atoms", len(pdb), len(atoms))
	}

	g, err := NewGrid(grid, nx, ny, nz)
	if err != nil {
		return nil, err
	}

	if verbose {
		io.Pf("> Retrieving interface residues\n")
	}

	indices := MapAtomsToSurface(g, atoms, ref, sc, step, probe, nthreads)
	residues := make([]string, len(indices))
	for i, atomIdx := range indices {
		residues[i] = pdb[atomIdx]
	}
	return residues, nil
}
