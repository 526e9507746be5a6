// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_atoms01(tst *testing.T) {

	chk.PrintTitle("atoms01. read an atom table CSV")

	dir := tst.TempDir()
	path := filepath.Join(dir, "atoms.csv")
	doc := "x,y,z,radius,resid\n" +
		"10,10,10,2.0,A:1:ALA\n" +
		"12,10,10,2.0,A:2:GLY\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		tst.Fatalf("WriteFile failed: %v", err)
	}

	atoms, pdb, err := ReadAtoms(path)
	if err != nil {
		tst.Errorf("ReadAtoms failed: %v", err)
		return
	}
	chk.IntAssert(len(atoms), 2)
	chk.IntAssert(len(pdb), 2)
	chk.Scalar(tst, "atoms[0].X", 1e-15, atoms[0].X, 10)
	chk.Scalar(tst, "atoms[1].X", 1e-15, atoms[1].X, 12)
	if pdb[0] != "A:1:ALA" || pdb[1] != "A:2:GLY" {
		tst.Errorf("expected residue ids [A:1:ALA A:2:GLY], got %v", pdb)
	}
}

func Test_atoms02(tst *testing.T) {

	chk.PrintTitle("atoms02. empty atom table is a degenerate-input error")

	dir := tst.TempDir()
	path := filepath.Join(dir, "atoms.csv")
	if err := os.WriteFile(path, []byte("x,y,z,radius,resid\n"), 0644); err != nil {
		tst.Fatalf("WriteFile failed: %v", err)
	}

	if _, _, err := ReadAtoms(path); err == nil {
		tst.Errorf("ReadAtoms should reject an empty atom table")
	}
}
