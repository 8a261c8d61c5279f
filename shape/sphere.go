// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/tormund/rigid3d/vecmath"

// Sphere is a solid ball of the given radius, centered on its owning
// shape instance's local origin.
type Sphere struct {
	Radius float32
}

// NewSphere creates a new Sphere shape with the given radius.
func NewSphere(radius float32) *Sphere {

	return &Sphere{Radius: radius}
}

// Kind implements Shape.
func (s *Sphere) Kind() Kind { return KindSphere }

// BoundingBox implements Shape.
func (s *Sphere) BoundingBox() vecmath.Box3 {

	r := s.Radius
	return vecmath.Box3{
		Min: vecmath.Vector3{X: -r, Y: -r, Z: -r},
		Max: vecmath.Vector3{X: r, Y: r, Z: r},
	}
}

// BoundingSphereRadius implements Shape.
func (s *Sphere) BoundingSphereRadius() float32 { return s.Radius }

// Volume implements Shape.
func (s *Sphere) Volume() float32 {

	return (4.0 / 3.0) * vecmath.Pi * s.Radius * s.Radius * s.Radius
}

// RotationalInertia implements Shape: the standard solid-sphere tensor
// I = (2/5) m r^2 on the diagonal.
func (s *Sphere) RotationalInertia(mass float32) vecmath.Matrix3 {

	i := 0.4 * mass * s.Radius * s.Radius
	m := vecmath.NewDiagonalMatrix3(i, i, i)
	return *m
}
