// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape implements the collidable primitives attached to bodies:
// Plane, Sphere, Particle and Convex. Narrow-phase dispatch switches on
// Kind() rather than using virtual dispatch, so adding a shape kind means
// touching the collision package's kernel table, not this package's
// interface.
package shape

import "github.com/tormund/rigid3d/vecmath"

// Kind tags a Shape's concrete type for narrow-phase dispatch.
type Kind int

// The four shape kinds this engine supports. Non-convex meshes are an
// explicit non-goal; callers decompose them into multiple Convex shapes
// on a compound body.
const (
	KindPlane Kind = iota
	KindSphere
	KindParticle
	KindConvex
)

func (k Kind) String() string {

	switch k {
	case KindPlane:
		return "Plane"
	case KindSphere:
		return "Sphere"
	case KindParticle:
		return "Particle"
	case KindConvex:
		return "Convex"
	default:
		return "Unknown"
	}
}

// Shape is the common interface satisfied by every collidable primitive.
// Implementations are immutable value-ish types; a Body holds them paired
// with a per-instance local Transform3d, which is how a single shape
// value can be reused across multiple bodies or multiple slots of a
// compound body.
type Shape interface {
	// Kind identifies the concrete shape for narrow-phase dispatch.
	Kind() Kind
	// BoundingBox returns the shape's local-frame axis-aligned bounding box.
	BoundingBox() vecmath.Box3
	// BoundingSphereRadius returns the radius of the smallest sphere,
	// centered on the shape's local origin, that contains it.
	BoundingSphereRadius() float32
	// Volume returns the shape's volume (used to derive mass from density).
	Volume() float32
	// RotationalInertia returns the local-frame inertia tensor for the
	// given total mass.
	RotationalInertia(mass float32) vecmath.Matrix3
}
