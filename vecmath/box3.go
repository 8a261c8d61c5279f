// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

// Box3 represents an axis-aligned bounding box defined by its minimum
// and maximum corner points. Returned by Body.BoundingBox for callers'
// own AABB culling (the broad phase itself tests bounding spheres) and
// used by Convex for the box-equivalent inertia approximation.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// NewBox3 creates and returns a pointer to a new Box3 with the given
// minimum and maximum corners.
func NewBox3(min, max *Vector3) *Box3 {

	b := new(Box3)
	b.Set(min, max)
	return b
}

// Set sets this box's minimum and maximum corners.
// Returns the pointer to this updated box.
func (b *Box3) Set(min, max *Vector3) *Box3 {

	if min != nil {
		b.Min = *min
	} else {
		b.Min.Set(Inf(1), Inf(1), Inf(1))
	}
	if max != nil {
		b.Max = *max
	} else {
		b.Max.Set(Inf(-1), Inf(-1), Inf(-1))
	}
	return b
}

// MakeEmpty sets this box to an empty box (suitable as the seed for a
// sequence of ExpandByPoint calls).
// Returns the pointer to this updated box.
func (b *Box3) MakeEmpty() *Box3 {

	b.Min.Set(Inf(1), Inf(1), Inf(1))
	b.Max.Set(Inf(-1), Inf(-1), Inf(-1))
	return b
}

// ExpandByPoint grows this box, if necessary, to contain point.
// Returns the pointer to this updated box.
func (b *Box3) ExpandByPoint(point *Vector3) *Box3 {

	b.Min.Min(point)
	b.Max.Max(point)
	return b
}

// Center returns the midpoint of this box.
func (b *Box3) Center() Vector3 {

	var c Vector3
	c.AddVectors(&b.Min, &b.Max).MultiplyScalar(0.5)
	return c
}

// Size returns the vector from Min to Max.
func (b *Box3) Size() Vector3 {

	var s Vector3
	s.SubVectors(&b.Max, &b.Min)
	return s
}

// Translate offsets this box by v in place.
// Returns the pointer to this updated box.
func (b *Box3) Translate(v *Vector3) *Box3 {

	b.Min.Add(v)
	b.Max.Add(v)
	return b
}

// IsIntersectionBox returns whether other overlaps this box on all three axes.
func (b *Box3) IsIntersectionBox(other *Box3) bool {

	if other.Max.X < b.Min.X || other.Min.X > b.Max.X ||
		other.Max.Y < b.Min.Y || other.Min.Y > b.Max.Y ||
		other.Max.Z < b.Min.Z || other.Min.Z > b.Max.Z {
		return false
	}
	return true
}

// ContainsPoint returns whether point lies within this box.
func (b *Box3) ContainsPoint(point *Vector3) bool {

	return !(point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z)
}

// Clone returns a pointer to a copy of this box.
func (b *Box3) Clone() *Box3 {

	return NewBox3(&b.Min, &b.Max)
}
