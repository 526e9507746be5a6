// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import "github.com/cpmech/gosl/chk"

// ClusterStats describes one cluster found by the flood-fill pruner:
// its tag and the number of voxels it claimed.
type ClusterStats struct {
	Tag    int32
	Points int
}

// ClusterPolicyFunc decides, given every cluster the pruner discovered,
// which tags should be kept as "exterior surface" (become TagSolvent);
// every other tag is discarded (becomes TagBulk).
type ClusterPolicyFunc func(clusters []ClusterStats) map[int32]bool

// clusterPolicies holds all registered cluster-selection policies, the same
// small string-keyed factory idiom ele/factory.go uses for element
// allocators (SetAllocator/GetAllocator), applied here to picking which
// flood-fill cluster survives instead of to element types.
var clusterPolicies = make(map[string]ClusterPolicyFunc)

// RegisterClusterPolicy adds a new cluster-selection policy under name. It
// panics if name is already registered, mirroring ele.SetAllocator's
// duplicate-registration guard: this only fires during package
// initialization, never on caller-supplied input.
func RegisterClusterPolicy(name string, fcn ClusterPolicyFunc) {
	if _, ok := clusterPolicies[name]; ok {
		chk.Panic("cannot register cluster policy %q because it exists already", name)
	}
	clusterPolicies[name] = fcn
}

// GetClusterPolicy looks up a registered cluster-selection policy by name.
// Unlike the registration panic above, an unknown name is caller-supplied
// (typically from a TOML config file), so it is a degenerate-input error,
// not a panic.
func GetClusterPolicy(name string) (ClusterPolicyFunc, error) {
	fcn, ok := clusterPolicies[name]
	if !ok {
		return nil, chk.Err("cluster policy %q is not registered", name)
	}
	return fcn, nil
}

func init() {
	// "first" reproduces original_source/C/SERD.c's reference behavior
	// exactly: the first cluster discovered in lexicographic scan order,
	// tag 2, is kept; every tag greater than 2 is discarded. On typical
	// biomolecular inputs this is also the largest (exterior) cluster, but
	// the two do not coincide in general.
	RegisterClusterPolicy("first", func(clusters []ClusterStats) map[int32]bool {
		keep := make(map[int32]bool, 1)
		keep[firstClusterTag] = true
		return keep
	})

	// "largest" keeps whichever cluster claimed the most voxels, breaking
	// ties toward the lowest tag (i.e. the first one discovered).
	RegisterClusterPolicy("largest", func(clusters []ClusterStats) map[int32]bool {
		keep := make(map[int32]bool, 1)
		var bestTag int32
		bestPoints := -1
		for _, c := range clusters {
			if c.Points > bestPoints {
				bestPoints = c.Points
				bestTag = c.Tag
			}
		}
		if bestPoints >= 0 {
			keep[bestTag] = true
		}
		return keep
	})
}
