// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_policy01(tst *testing.T) {

	chk.PrintTitle("policy01. first vs largest cluster policy")

	clusters := []ClusterStats{
		{Tag: 2, Points: 50},  // first-discovered, smaller
		{Tag: 3, Points: 500}, // discovered later, larger
	}

	first, err := GetClusterPolicy("first")
	if err != nil {
		tst.Errorf("GetClusterPolicy(first) failed: %v", err)
		return
	}
	keepFirst := first(clusters)
	if !keepFirst[2] || keepFirst[3] {
		tst.Errorf("policy \"first\" should keep tag 2 only, got %v", keepFirst)
	}

	largest, err := GetClusterPolicy("largest")
	if err != nil {
		tst.Errorf("GetClusterPolicy(largest) failed: %v", err)
		return
	}
	keepLargest := largest(clusters)
	if keepLargest[2] || !keepLargest[3] {
		tst.Errorf("policy \"largest\" should keep tag 3 only, got %v", keepLargest)
	}

	if _, err := GetClusterPolicy("nonexistent"); err == nil {
		tst.Errorf("GetClusterPolicy should fail for an unregistered name")
	}
}

func Test_policy02(tst *testing.T) {

	chk.PrintTitle("policy02. duplicate registration panics")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("RegisterClusterPolicy should panic on duplicate name")
		}
	}()
	RegisterClusterPolicy("first", func(clusters []ClusterStats) map[int32]bool { return nil })
}
