// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import "testing"

const sampleYAML = `
ice:
  friction: 0.02
  bounciness: 0.1
rubber:
  friction: 0.9
  bounciness: 0.8
`

func TestLoadDecodesPresets(t *testing.T) {

	lib := NewLibrary()
	if err := lib.Load([]byte(sampleYAML)); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	ice, ok := lib.Get("ice")
	if !ok {
		t.Fatal("ice preset not found")
	}
	if ice.Friction != 0.02 || ice.Bounciness != 0.1 {
		t.Errorf("ice = %+v, want {0.02 0.1}", ice)
	}

	if _, ok := lib.Get("nonexistent"); ok {
		t.Error("Get found a preset that was never loaded")
	}
}

func TestLoadIsAdditive(t *testing.T) {

	lib := NewLibrary()
	lib.Load([]byte("ice:\n  friction: 0.02\n  bounciness: 0.1\n"))
	lib.Load([]byte("rubber:\n  friction: 0.9\n  bounciness: 0.8\n"))

	if len(lib.Names()) != 2 {
		t.Errorf("Names() = %v, want 2 presets after two Load calls", lib.Names())
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {

	lib := NewLibrary()
	if err := lib.Load([]byte("not: valid: yaml: at: all: -")); err == nil {
		t.Error("Load accepted malformed YAML without error")
	}
}
