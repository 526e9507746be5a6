// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

func main() {

	natoms := flag.Int("n", 50, "number of atoms")
	seed := flag.Int("seed", 4321, "random seed")
	box := flag.Float64("box", 40.0, "bounding box side, Ångström")
	rmin := flag.Float64("rmin", 1.2, "minimum van der Waals radius")
	rmax := flag.Float64("rmax", 2.4, "maximum van der Waals radius")
	fnpath := flag.String("o", "atoms.csv", "output CSV path")
	flag.Parse()

	rnd.Init(*seed)

	f, err := os.Create(*fnpath)
	if err != nil {
		chk.Panic("cannot create %q: %v", *fnpath, err)
	}
	defer f.Close()

	io.Ff(f, "x,y,z,radius,resid\n")
	for i := 0; i < *natoms; i++ {
		x := rnd.Float64(0, *box)
		y := rnd.Float64(0, *box)
		z := rnd.Float64(0, *box)
		r := rnd.Float64(*rmin, *rmax)
		io.Ff(f, "%g,%g,%g,%g,A:%d:UNK\n", x, y, z, r, i+1)
	}

	io.Pf("wrote %d synthetic atoms to %s\n", *natoms, *fnpath)
}
