// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/tormund/rigid3d/vecmath"

// Particle is a point mass: no volume, no extent. It never contributes
// rotational inertia and its bounding sphere has zero radius.
type Particle struct{}

// NewParticle creates a new Particle shape.
func NewParticle() *Particle {

	return &Particle{}
}

// Kind implements Shape.
func (p *Particle) Kind() Kind { return KindParticle }

// BoundingBox implements Shape: a degenerate, zero-size box at the origin.
func (p *Particle) BoundingBox() vecmath.Box3 {

	return vecmath.Box3{}
}

// BoundingSphereRadius implements Shape: always zero.
func (p *Particle) BoundingSphereRadius() float32 { return 0 }

// Volume implements Shape: always zero.
func (p *Particle) Volume() float32 { return 0 }

// RotationalInertia implements Shape: always the zero tensor, since a
// point mass carries no rotational inertia about its own center.
func (p *Particle) RotationalInertia(mass float32) vecmath.Matrix3 {

	return vecmath.Matrix3{}
}
