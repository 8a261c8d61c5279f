// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material loads named Material presets (e.g. "ice", "rubber",
// "wood") from a YAML file, the way the corpus's scene/material
// description files are decoded with yaml.v2, narrowed to this
// module's own {Friction, Bounciness} data shape.
package material

import (
	"fmt"
	"io/ioutil"

	"github.com/tormund/rigid3d/body"
	"gopkg.in/yaml.v2"
)

// preset mirrors body.Material's fields with yaml tags; body.Material
// itself stays free of serialization tags since most callers construct
// it directly in code.
type preset struct {
	Friction   float32 `yaml:"friction"`
	Bounciness float32 `yaml:"bounciness"`
}

// Library is a named table of Material presets.
type Library struct {
	presets map[string]body.Material
}

// NewLibrary returns an empty Library.
func NewLibrary() *Library {
	return &Library{presets: make(map[string]body.Material)}
}

// Load decodes a YAML document of the form:
//
//	ice:
//	  friction: 0.02
//	  bounciness: 0.1
//	rubber:
//	  friction: 0.9
//	  bounciness: 0.8
//
// into the library, adding to (and overwriting on name collision with)
// whatever presets it already holds.
func (lib *Library) Load(data []byte) error {

	var raw map[string]preset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("material: decoding library: %w", err)
	}
	for name, p := range raw {
		lib.presets[name] = body.Material{Friction: p.Friction, Bounciness: p.Bounciness}
	}
	return nil
}

// LoadFile reads path and loads it as a YAML preset library.
func (lib *Library) LoadFile(path string) error {

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("material: reading %s: %w", path, err)
	}
	return lib.Load(data)
}

// Get returns the named preset and whether it was found.
func (lib *Library) Get(name string) (body.Material, bool) {
	m, ok := lib.presets[name]
	return m, ok
}

// Names returns every preset name currently in the library.
func (lib *Library) Names() []string {

	names := make([]string, 0, len(lib.presets))
	for name := range lib.presets {
		names = append(names, name)
	}
	return names
}
