// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import "testing"

func TestCombineFrictionGeometricMean(t *testing.T) {

	got := CombineFriction(Material{Friction: 0.4}, Material{Friction: 0.9})
	want := float32(0.6)
	if got < want-1e-6 || got > want+1e-6 {
		t.Errorf("CombineFriction(0.4, 0.9) = %v, want %v", got, want)
	}
}

func TestCombineFrictionOverrideTakesTheLarger(t *testing.T) {

	got := CombineFriction(Material{Friction: -1}, Material{Friction: 0.7})
	if got != 0.7 {
		t.Errorf("CombineFriction(-1, 0.7) = %v, want 0.7", got)
	}

	got = CombineFriction(Material{Friction: -1}, Material{Friction: -5})
	if got != -1 {
		t.Errorf("CombineFriction(-1, -5) = %v, want -1 (the larger/less negative)", got)
	}
}

func TestCombineBoucinessGeometricMean(t *testing.T) {

	got := CombineBounciness(Material{Bounciness: 0.25}, Material{Bounciness: 1})
	want := float32(0.5)
	if got < want-1e-6 || got > want+1e-6 {
		t.Errorf("CombineBounciness(0.25, 1) = %v, want %v", got, want)
	}
}
