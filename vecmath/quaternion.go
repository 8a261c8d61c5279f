// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

// Quaternion is a unit quaternion with X, Y, Z and W components,
// used to represent rigid-body orientation.
type Quaternion struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuaternion creates and returns a pointer to a new quaternion
// from the specified components.
func NewQuaternion(x, y, z, w float32) *Quaternion {

	return &Quaternion{X: x, Y: y, Z: z, W: w}
}

// Set sets this quaternion's components.
// Returns the pointer to this updated quaternion.
func (q *Quaternion) Set(x, y, z, w float32) *Quaternion {

	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
	return q
}

// SetIdentity sets this quaternion to the identity rotation.
// Returns the pointer to this updated quaternion.
func (q *Quaternion) SetIdentity() *Quaternion {

	q.X, q.Y, q.Z, q.W = 0, 0, 0, 1
	return q
}

// Copy copies other into this quaternion.
// Returns the pointer to this updated quaternion.
func (q *Quaternion) Copy(other *Quaternion) *Quaternion {

	*q = *other
	return q
}

// SetFromAxisAngle sets this quaternion to the rotation of angle radians
// around axis (which must be normalized).
// Returns the pointer to this updated quaternion.
func (q *Quaternion) SetFromAxisAngle(axis *Vector3, angle float32) *Quaternion {

	half := angle / 2
	s := Sin(half)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = Cos(half)
	return q
}

// SetFromUnitVectors sets this quaternion to the rotation that takes the
// normalized vector vFrom to the normalized vector vTo.
// Returns the pointer to this updated quaternion.
func (q *Quaternion) SetFromUnitVectors(vFrom, vTo *Vector3) *Quaternion {

	const eps float32 = 1e-6
	var v1 Vector3

	r := vFrom.Dot(vTo) + 1
	if r < eps {
		r = 0
		if Abs(vFrom.X) > Abs(vFrom.Z) {
			v1.Set(-vFrom.Y, vFrom.X, 0)
		} else {
			v1.Set(0, -vFrom.Z, vFrom.Y)
		}
	} else {
		v1.CrossVectors(vFrom, vTo)
	}
	q.X, q.Y, q.Z, q.W = v1.X, v1.Y, v1.Z, r
	return q.Normalize()
}

// Conjugate sets this quaternion to its conjugate.
// Returns the pointer to this updated quaternion.
func (q *Quaternion) Conjugate() *Quaternion {

	q.X *= -1
	q.Y *= -1
	q.Z *= -1
	return q
}

// Inverse sets this quaternion to its inverse (conjugate, then normalized).
// Returns the pointer to this updated quaternion.
func (q *Quaternion) Inverse() *Quaternion {

	return q.Conjugate().Normalize()
}

// Dot returns the dot product of this quaternion with other.
func (q *Quaternion) Dot(other *Quaternion) float32 {

	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Length returns the length of this quaternion.
func (q *Quaternion) Length() float32 {

	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize normalizes this quaternion to unit length.
// Returns the pointer to this updated quaternion.
func (q *Quaternion) Normalize() *Quaternion {

	l := q.Length()
	if l == 0 {
		q.X, q.Y, q.Z, q.W = 0, 0, 0, 1
	} else {
		inv := 1 / l
		q.X *= inv
		q.Y *= inv
		q.Z *= inv
		q.W *= inv
	}
	return q
}

// NormalizeFast approximates normalizing this quaternion using a first-order
// Taylor expansion; cheaper than Normalize and accurate when q is already
// close to unit length, which is the common case after one integration step.
// Returns the pointer to this updated quaternion.
func (q *Quaternion) NormalizeFast() *Quaternion {

	f := (3 - (q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)) / 2
	if f == 0 {
		q.X, q.Y, q.Z, q.W = 0, 0, 0, 1
	} else {
		q.X *= f
		q.Y *= f
		q.Z *= f
		q.W *= f
	}
	return q
}

// Multiply sets this quaternion to the product of itself and other (q = q*other).
// Returns the pointer to this updated quaternion.
func (q *Quaternion) Multiply(other *Quaternion) *Quaternion {

	return q.MultiplyQuaternions(q, other)
}

// MultiplyQuaternions sets this quaternion to the product a*b.
// Returns the pointer to this updated quaternion.
func (q *Quaternion) MultiplyQuaternions(a, b *Quaternion) *Quaternion {

	ax, ay, az, aw := a.X, a.Y, a.Z, a.W
	bx, by, bz, bw := b.X, b.Y, b.Z, b.W

	q.X = ax*bw + aw*bx + ay*bz - az*by
	q.Y = ay*bw + aw*by + az*bx - ax*bz
	q.Z = az*bw + aw*bz + ax*by - ay*bx
	q.W = aw*bw - ax*bx - ay*by - az*bz
	return q
}

// Equals returns whether this quaternion equals other exactly.
func (q *Quaternion) Equals(other *Quaternion) bool {

	return q.X == other.X && q.Y == other.Y && q.Z == other.Z && q.W == other.W
}

// Clone returns a new Quaternion with the same components as this one.
func (q *Quaternion) Clone() *Quaternion {

	return NewQuaternion(q.X, q.Y, q.Z, q.W)
}

// ToMatrix3 returns the 3x3 rotation matrix equivalent to this quaternion.
func (q *Quaternion) ToMatrix3() *Matrix3 {

	x, y, z, w := q.X, q.Y, q.Z, q.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	m := NewMatrix3()
	m.Set(
		1-(yy+zz), xy-wz, xz+wy,
		xy+wz, 1-(xx+zz), yz-wx,
		xz-wy, yz+wx, 1-(xx+yy),
	)
	return m
}
