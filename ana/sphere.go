// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to check the voxel
// engine's output against closed-form geometry
package ana

import (
	"math"
	"testing"
)

// Sphere holds the analytic solution for a single isolated atom: the
// expected shell radius of its solvent-accessible and solvent-excluded
// surfaces, in voxel units.
type Sphere struct {
	Radius float64 // van der Waals radius, Ångström
	Probe  float64 // probe radius, Ångström
	Step   float64 // grid spacing, Ångström

	// derived
	SASRadius float64 // expected SAS shell radius, voxel units
	SESRadius float64 // expected SES shell radius, voxel units
}

// Init computes the derived shell radii from Radius, Probe, and Step.
func (o *Sphere) Init() {
	o.SASRadius = (o.Radius + o.Probe) / o.Step
	o.SESRadius = o.Radius / o.Step
}

// CheckShell asserts that every TagSolvent voxel of g lies within tol
// voxels of the expected radius want, measured from (cx,cy,cz). A single
// isolated atom's kept surface is a shell at that radius; anything outside
// the tolerance means the carving, SES adjustment, or pruning is off.
func (o Sphere) CheckShell(tst *testing.T, g shellGrid, cx, cy, cz, want, tol float64) {
	nx, ny, nz := g.Shape()
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				if !g.Kept(i, j, k) {
					continue
				}
				dist := math.Sqrt(math.Pow(float64(i)-cx, 2) + math.Pow(float64(j)-cy, 2) + math.Pow(float64(k)-cz, 2))
				if math.Abs(dist-want) > tol {
					tst.Errorf("voxel (%d,%d,%d) at distance %g from center, want %g (tol %g)", i, j, k, dist, want, tol)
				}
			}
		}
	}
}

// shellGrid is the minimal view CheckShell needs of a voxel grid. tests/
// passes a small adapter wrapping its own grid+shape so this package has no
// import-cycle dependency on voxel.
type shellGrid interface {
	Shape() (nx, ny, nz int)
	Kept(i, j, k int) bool
}
