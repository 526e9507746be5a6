// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp reads the TOML run configuration and the CSV atom table that
// drive the voxel engine
package inp

import (
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/pelletier/go-toml"

	"github.com/cpmech/gosurf/voxel"
)

// Config holds everything a run needs besides the atom table itself: grid
// shape and spacing, probe geometry, orientation, concurrency width, and
// which cluster-selection policy to use. It is decoded from a TOML document
// the same way kpotier/molsolvent's Volume config is.
type Config struct {
	AtomsFile string `toml:"atoms_file"`
	OutFile   string `toml:"out_file"`

	Nx int `toml:"nx"`
	Ny int `toml:"ny"`
	Nz int `toml:"nz"`

	Step  float64 `toml:"step"`
	Probe float64 `toml:"probe"`
	IsSES bool    `toml:"is_ses"`

	RefX float64 `toml:"ref_x"`
	RefY float64 `toml:"ref_y"`
	RefZ float64 `toml:"ref_z"`

	AlphaDeg float64 `toml:"alpha_deg"`
	BetaDeg  float64 `toml:"beta_deg"`

	ClusterPolicy string `toml:"cluster_policy"`
	Nthreads      int    `toml:"nthreads"`
	Verbose       bool   `toml:"verbose"`
}

// ReadConfig decodes a TOML configuration file at path into a Config. It
// applies the documented defaults for ClusterPolicy and Nthreads when the
// document omits them, then validates the result.
func ReadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("cannot open configuration file %q: %v", path, err)
	}
	defer f.Close()

	var cfg Config
	dec := toml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, chk.Err("cannot parse configuration file %q: %v", path, err)
	}

	if cfg.ClusterPolicy == "" {
		cfg.ClusterPolicy = voxel.DefaultClusterPolicy
	}
	if cfg.Nthreads == 0 {
		cfg.Nthreads = 1
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces the degenerate-input rules the voxel engine itself
// assumes its caller has already checked: strictly positive grid shape and
// step, non-negative probe, positive thread count, and a registered cluster
// policy.
func (c *Config) Validate() error {
	if c.Nx <= 0 || c.Ny <= 0 || c.Nz <= 0 {
		return chk.Err("grid shape must be strictly positive: nx=%d, ny=%d, nz=%d", c.Nx, c.Ny, c.Nz)
	}
	if c.Step <= 0 {
		return chk.Err("step must be positive, got %g", c.Step)
	}
	if c.Probe < 0 {
		return chk.Err("probe must be non-negative, got %g", c.Probe)
	}
	if c.Nthreads <= 0 {
		return chk.Err("nthreads must be positive, got %d", c.Nthreads)
	}
	if _, err := voxel.GetClusterPolicy(c.ClusterPolicy); err != nil {
		return err
	}
	if c.AtomsFile == "" {
		return chk.Err("atoms_file must be set")
	}
	return nil
}

// Reference returns the grid origin as a voxel.Reference.
func (c *Config) Reference() voxel.Reference {
	return voxel.Reference{c.RefX, c.RefY, c.RefZ}
}

// SinCos converts the configured orientation angles, in degrees, into the
// sine/cosine quadruple the coordinate transform uses.
func (c *Config) SinCos() voxel.SinCos {
	alpha := c.AlphaDeg * math.Pi / 180.0
	beta := c.BetaDeg * math.Pi / 180.0
	return voxel.SinCos{
		SinA: math.Sin(alpha), CosA: math.Cos(alpha),
		SinB: math.Sin(beta), CosB: math.Cos(beta),
	}
}
