// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import "github.com/tormund/rigid3d/body"

// materialPair is an unordered lookup key over two Materials.
type materialPair struct {
	a, b body.Material
}

// ContactMaterials is a lookup table of explicit per-material-pairing
// overrides, used the way the corpus's ContactMaterial registrations
// let two specific materials (e.g. "ice" vs "rubber") combine
// differently than CombineFriction/CombineBounciness's generic rule.
// Pairs with no explicit registration fall back to that generic rule.
type ContactMaterials struct {
	overrides map[materialPair]body.Material
}

// NewContactMaterials returns an empty override table.
func NewContactMaterials() *ContactMaterials {
	return &ContactMaterials{overrides: make(map[materialPair]body.Material)}
}

// Set registers an explicit combined Material for the pairing (a, b),
// symmetric in the two arguments.
func (cm *ContactMaterials) Set(a, b, combined body.Material) {
	cm.overrides[materialPair{a, b}] = combined
	cm.overrides[materialPair{b, a}] = combined
}

// Combine returns the registered override for (a, b) if one exists,
// otherwise CombineFriction/CombineBounciness's generic combination.
func (cm *ContactMaterials) Combine(a, b body.Material) body.Material {

	if m, ok := cm.overrides[materialPair{a, b}]; ok {
		return m
	}
	return body.Material{
		Friction:   body.CombineFriction(a, b),
		Bounciness: body.CombineBounciness(a, b),
	}
}
