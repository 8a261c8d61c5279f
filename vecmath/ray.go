// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

// Ray represents an oriented 3D line segment defined by an origin point
// and a (not necessarily normalized) direction vector. Used by Raycaster.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates and returns a pointer to a new Ray with the given
// origin and direction.
func NewRay(origin, direction *Vector3) *Ray {

	r := new(Ray)
	r.Origin = *origin
	r.Direction = *direction
	return r
}

// At returns the point at distance t from the ray's origin along its direction.
func (r *Ray) At(t float32) Vector3 {

	var p Vector3
	p.Copy(&r.Direction).MultiplyScalar(t).Add(&r.Origin)
	return p
}

// IntersectTriangle tests this ray against the triangle (a, b, c) and, if it
// intersects, writes the hit point into point and returns true.
// Ported from the corpus's barycentric Möller–Trumbore style test.
func (r *Ray) IntersectTriangle(a, b, c *Vector3, backfaceCulling bool, point *Vector3) bool {

	var diff, edge1, edge2, normal Vector3
	edge1.SubVectors(b, a)
	edge2.SubVectors(c, a)
	normal.CrossVectors(&edge1, &edge2)

	ddn := r.Direction.Dot(&normal)
	var sign float32
	switch {
	case ddn > 0:
		if backfaceCulling {
			return false
		}
		sign = 1
	case ddn < 0:
		sign = -1
		ddn = -ddn
	default:
		return false
	}

	diff.SubVectors(&r.Origin, a)
	var tmp Vector3
	ddQxE2 := sign * r.Direction.Dot(tmp.CrossVectors(&diff, &edge2))
	if ddQxE2 < 0 {
		return false
	}

	ddE1xQ := sign * r.Direction.Dot(tmp.CrossVectors(&edge1, &diff))
	if ddE1xQ < 0 {
		return false
	}
	if ddQxE2+ddE1xQ > ddn {
		return false
	}

	qdn := -sign * diff.Dot(&normal)
	if qdn < 0 {
		return false
	}

	*point = r.At(qdn / ddn)
	return true
}
