// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gosurf/inp"
	"github.com/cpmech/gosurf/out"
	"github.com/cpmech/gosurf/voxel"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\nGosurf -- solvent-exposed molecular surface engine\n\n")
	io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	// configuration filenamepath
	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a configuration file. Ex.: single_sphere.toml")
	}

	// check extension
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".toml"
	}

	// profiling?
	defer utl.DoProf(false)()

	// read configuration and atom table
	cfg, err := inp.ReadConfig(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	atoms, pdb, err := inp.ReadAtoms(cfg.AtomsFile)
	if err != nil {
		chk.Panic("%v", err)
	}

	// run the pipeline
	ref := cfg.Reference()
	sc := cfg.SinCos()
	grid := make([]int32, cfg.Nx*cfg.Ny*cfg.Nz)
	err = voxel.SurfaceWithPolicy(grid, cfg.Nx, cfg.Ny, cfg.Nz, atoms, ref, sc,
		cfg.Step, cfg.Probe, cfg.IsSES, cfg.Nthreads, cfg.Verbose, cfg.ClusterPolicy)
	if err != nil {
		chk.Panic("Surface failed: %v", err)
	}

	residues, err := voxel.Interface(grid, cfg.Nx, cfg.Ny, cfg.Nz, pdb, atoms, ref, sc,
		cfg.Step, cfg.Probe, cfg.Nthreads, cfg.Verbose)
	if err != nil {
		chk.Panic("Interface failed: %v", err)
	}

	// report
	if cfg.OutFile != "" {
		if err := out.WriteInterface(cfg.OutFile, residues); err != nil {
			chk.Panic("%v", err)
		}
		io.Pfgreen("\nwrote %d interface residue(s) to %s\n", len(residues), cfg.OutFile)
		return
	}
	io.Pfgreen("\n%d interface residue(s):\n", len(residues))
	for _, r := range residues {
		io.Pf("  %s\n", r)
	}
}
