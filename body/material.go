// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import "github.com/tormund/rigid3d/vecmath"

// Material carries the surface properties a Body's shapes collide with:
// friction and bounciness (coefficient of restitution).
type Material struct {
	Friction   float32
	Bounciness float32
}

// DefaultMaterial is used by bodies that never had a Material assigned.
var DefaultMaterial = Material{Friction: 0.3, Bounciness: 0.3}

// NewMaterial returns a Material with the given friction and bounciness.
func NewMaterial(friction, bounciness float32) Material {

	return Material{Friction: friction, Bounciness: bounciness}
}

// CombineFriction resolves the pairwise friction coefficient used by a
// contact between two materials. A negative Friction on either operand
// is an explicit "override" marker; the combined value is then the
// larger of the two (the override wins only if it's the stricter,
// larger bound). Otherwise the two are combined as sqrt(f1*f2).
func CombineFriction(a, b Material) float32 {

	if a.Friction < 0 || b.Friction < 0 {
		return vecmath.Max(a.Friction, b.Friction)
	}
	return vecmath.Sqrt(a.Friction * b.Friction)
}

// CombineBounciness resolves the pairwise restitution coefficient used by
// a contact between two materials, with the same override rule as
// CombineFriction.
func CombineBounciness(a, b Material) float32 {

	if a.Bounciness < 0 || b.Bounciness < 0 {
		return vecmath.Max(a.Bounciness, b.Bounciness)
	}
	return vecmath.Sqrt(a.Bounciness * b.Bounciness)
}
