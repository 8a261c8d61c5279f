// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

// Transform3d is a rigid frame: an origin point plus an orientation
// quaternion. It is the basic building block for Body poses and shape
// local offsets.
type Transform3d struct {
	Position   Vector3
	Quaternion Quaternion
}

// NewTransform3d returns the identity transform: zero position, identity
// orientation.
func NewTransform3d() *Transform3d {

	t := &Transform3d{}
	t.Quaternion.SetIdentity()
	return t
}

// Identity resets this transform to the identity transform.
// Returns the pointer to this updated transform.
func (t *Transform3d) Identity() *Transform3d {

	t.Position.Zero()
	t.Quaternion.SetIdentity()
	return t
}

// Copy copies other into this transform.
// Returns the pointer to this updated transform.
func (t *Transform3d) Copy(other *Transform3d) *Transform3d {

	*t = *other
	return t
}

// PointPlaceIn transforms a point p given in this transform's local frame
// into the parent (world) frame: rotate then translate.
func (t *Transform3d) PointPlaceIn(p *Vector3) Vector3 {

	out := *p
	out.ApplyQuaternion(&t.Quaternion)
	out.Add(&t.Position)
	return out
}

// PointRelativeTo transforms a point p given in the parent (world) frame
// into this transform's local frame: the inverse of PointPlaceIn.
func (t *Transform3d) PointRelativeTo(p *Vector3) Vector3 {

	var out Vector3
	out.SubVectors(p, &t.Position)
	var inv Quaternion
	inv.Copy(&t.Quaternion).Inverse()
	out.ApplyQuaternion(&inv)
	return out
}

// DirectionPlaceIn rotates a direction vector v from this transform's
// local frame into the parent (world) frame (no translation).
func (t *Transform3d) DirectionPlaceIn(v *Vector3) Vector3 {

	out := *v
	out.ApplyQuaternion(&t.Quaternion)
	return out
}

// DirectionRelativeTo rotates a direction vector v from the parent (world)
// frame into this transform's local frame (no translation).
func (t *Transform3d) DirectionRelativeTo(v *Vector3) Vector3 {

	out := *v
	var inv Quaternion
	inv.Copy(&t.Quaternion).Inverse()
	out.ApplyQuaternion(&inv)
	return out
}

// RotateAroundOwn rotates this transform's orientation by angle radians
// around the given axis, expressed in this transform's own local frame.
// Returns the pointer to this updated transform.
func (t *Transform3d) RotateAroundOwn(axis *Vector3, angle float32) *Transform3d {

	var q Quaternion
	q.SetFromAxisAngle(axis, angle)
	t.Quaternion.Multiply(&q)
	return t
}

// TranslateBy offsets this transform's position by v.
// Returns the pointer to this updated transform.
func (t *Transform3d) TranslateBy(v *Vector3) *Transform3d {

	t.Position.Add(v)
	return t
}

// Inverse returns the transform that undoes this one: PlaceIn(t.Inverse())
// composed with PlaceIn(t) is the identity.
func (t *Transform3d) Inverse() Transform3d {

	var inv Transform3d
	inv.Quaternion.Copy(&t.Quaternion).Inverse()
	pos := t.Position
	pos.Negate()
	pos.ApplyQuaternion(&inv.Quaternion)
	inv.Position = pos
	return inv
}

// IntegrateOrientation advances q over dt given the pure-vector angular
// velocity omega, using the semi-implicit quaternion derivative
// q' = normalize(q + 0.5*dt*(omega ⊗ q)).
// Returns the pointer to this updated transform.
func (t *Transform3d) IntegrateOrientation(omega *Vector3, dt float32, fastNormalize bool) *Transform3d {

	q := &t.Quaternion
	half := dt * 0.5
	ox, oy, oz := omega.X, omega.Y, omega.Z
	qx, qy, qz, qw := q.X, q.Y, q.Z, q.W

	q.X = qx + half*(ox*qw+oy*qz-oz*qy)
	q.Y = qy + half*(oy*qw+oz*qx-ox*qz)
	q.Z = qz + half*(oz*qw+ox*qy-oy*qx)
	q.W = qw + half*(-ox*qx-oy*qy-oz*qz)

	if fastNormalize {
		q.NormalizeFast()
	} else {
		q.Normalize()
	}
	return t
}
