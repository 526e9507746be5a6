// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

// SinCos holds the sine and cosine of the two angles that orient the grid
// with respect to the world frame: (sin α, cos α, sin β, cos β).
type SinCos struct {
	SinA, CosA, SinB, CosB float64
}

// Reference is the world coordinate of voxel (0,0,0)'s corner.
type Reference [3]float64

// transform maps a world point (xw,yw,zw) into fractional grid-space
// coordinates (X,Y,Z) under the grid's origin, step, and orientation.
// Both the sphere rasterizer and the atom-to-surface mapper call this with
// the identical reference and sincos so the two stages agree on where
// every atom sits in grid space.
func transform(xw, yw, zw float64, ref Reference, step float64, sc SinCos) (X, Y, Z float64) {
	x := (xw - ref[0]) / step
	y := (yw - ref[1]) / step
	z := (zw - ref[2]) / step

	xp := x*sc.CosB + z*sc.SinB
	yp := y
	zp := -x*sc.SinB + z*sc.CosB

	X = xp
	Y = yp*sc.CosA - zp*sc.SinA
	Z = yp*sc.SinA + zp*sc.CosA
	return
}
