// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/tormund/rigid3d/vecmath"

// Plane is an infinite half-space shape. Its local-frame normal is always
// +Z; orient it in the world by rotating the owning body or shape instance.
type Plane struct{}

// NewPlane creates a new Plane shape.
func NewPlane() *Plane {

	return &Plane{}
}

// Kind implements Shape.
func (p *Plane) Kind() Kind { return KindPlane }

// BoundingBox returns a large-but-finite box bounded to -Z, matching the
// half-space the plane actually occupies (a literal infinite box makes
// broad-phase AABB math propagate Inf/NaN, so the corpus approximates it
// with a generously large finite extent; this module keeps that choice).
func (p *Plane) BoundingBox() vecmath.Box3 {

	const big = 1000
	return vecmath.Box3{
		Min: vecmath.Vector3{X: -big, Y: -big, Z: -big},
		Max: vecmath.Vector3{X: big, Y: big, Z: 0},
	}
}

// BoundingSphereRadius returns +Inf: a plane has no finite bounding sphere.
func (p *Plane) BoundingSphereRadius() float32 { return vecmath.Inf(1) }

// Volume returns +Inf.
func (p *Plane) Volume() float32 { return vecmath.Inf(1) }

// RotationalInertia returns the zero tensor: a Plane is always Static in
// practice, so its inertia never participates in integration.
func (p *Plane) RotationalInertia(mass float32) vecmath.Matrix3 {

	return vecmath.Matrix3{}
}

// LocalNormal returns the plane's normal in its own local frame: always +Z.
func (p *Plane) LocalNormal() vecmath.Vector3 {

	return vecmath.Vector3{X: 0, Y: 0, Z: 1}
}
