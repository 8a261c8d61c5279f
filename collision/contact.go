// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collision implements broad-phase pair selection, narrow-phase
// contact generation across every shape-pair combination, and raycasting
// against a set of bodies.
package collision

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/vecmath"
)

// Contact is one point of contact between two bodies: a world-space
// normal pointing from BodyA towards BodyB, and the two bodies' own
// surface points nearest the contact (which coincide, or nearly so, at
// rest but separate under penetration).
type Contact struct {
	BodyA *body.Body
	BodyB *body.Body
	Ni    vecmath.Vector3 // unit normal, BodyA -> BodyB
	Pi    vecmath.Vector3 // contact point on BodyA's surface
	Pj    vecmath.Vector3 // contact point on BodyB's surface
	Depth float32
}
