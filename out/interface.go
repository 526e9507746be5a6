// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out reports the result of an Interface run: the touching residue
// identifiers, in ascending atom-index order. It never serializes the
// voxel grid itself.
package out

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/gocarina/gocsv"
)

// residueRecord is one row of the interface-residue CSV report.
type residueRecord struct {
	Resid string `csv:"resid"`
}

// WriteInterface marshals a residue identifier list (as returned by
// voxel.Interface, already in ascending atom-index order) to a CSV file at
// path, the same gocsv.Marshal call pthm-soup's telemetry output manager
// uses for its structured records.
func WriteInterface(path string, residues []string) error {
	f, err := os.Create(path)
	if err != nil {
		return chk.Err("cannot create %q: %v", path, err)
	}
	defer f.Close()

	records := make([]residueRecord, len(residues))
	for i, r := range residues {
		records[i] = residueRecord{Resid: r}
	}
	if err := gocsv.Marshal(records, f); err != nil {
		return chk.Err("cannot write %q: %v", path, err)
	}
	return nil
}
