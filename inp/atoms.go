// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/gocarina/gocsv"

	"github.com/cpmech/gosurf/voxel"
)

// atomRecord is one row of the atom table CSV: a world-space center, a van
// der Waals radius, and the residue identifier the atom belongs to.
type atomRecord struct {
	X      float64 `csv:"x"`
	Y      float64 `csv:"y"`
	Z      float64 `csv:"z"`
	Radius float64 `csv:"radius"`
	Resid  string  `csv:"resid"`
}

// ReadAtoms loads an atom table CSV (columns x, y, z, radius, resid) into a
// voxel.Atom slice plus the parallel residue identifier table P, in file
// order, exactly as gocsv.UnmarshalFile does for pthm-soup's telemetry
// records, but for reading instead of writing.
func ReadAtoms(path string) (atoms []voxel.Atom, pdb []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, chk.Err("cannot open atom table %q: %v", path, err)
	}
	defer f.Close()

	var records []atomRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, nil, chk.Err("cannot parse atom table %q: %v", path, err)
	}
	if len(records) == 0 {
		return nil, nil, chk.Err("atom table %q has no records", path)
	}

	atoms = make([]voxel.Atom, len(records))
	pdb = make([]string, len(records))
	for i, r := range records {
		atoms[i] = voxel.Atom{X: r.X, Y: r.Y, Z: r.Z, Radius: r.Radius}
		pdb[i] = r.Resid
	}
	return atoms, pdb, nil
}
