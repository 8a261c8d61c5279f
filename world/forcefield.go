// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import "github.com/tormund/rigid3d/vecmath"

// ForceField is an acceleration defined at every point in space, applied
// to every Dynamic body in the World each step in addition to Gravity.
type ForceField interface {
	AccelerationAt(pos vecmath.Vector3) vecmath.Vector3
}

// ConstantForceField is a uniform acceleration field, the way World's
// own built-in Gravity behaves.
type ConstantForceField struct {
	Acceleration vecmath.Vector3
}

// NewConstantForceField returns a ConstantForceField with the given
// acceleration.
func NewConstantForceField(acceleration vecmath.Vector3) *ConstantForceField {
	return &ConstantForceField{Acceleration: acceleration}
}

// AccelerationAt satisfies ForceField; a constant field ignores pos.
func (f *ConstantForceField) AccelerationAt(pos vecmath.Vector3) vecmath.Vector3 {
	return f.Acceleration
}

// PointAttractorForceField pulls bodies toward Point with an
// inverse-square-law acceleration, clamped to MaxAcceleration to avoid
// the singularity as a body approaches Point.
type PointAttractorForceField struct {
	Point           vecmath.Vector3
	Strength        float32
	MaxAcceleration float32
}

// NewPointAttractorForceField returns a PointAttractorForceField pulling
// toward point with the given strength, capped at a max acceleration of
// 100 (matching the corpus's own instability guard).
func NewPointAttractorForceField(point vecmath.Vector3, strength float32) *PointAttractorForceField {
	return &PointAttractorForceField{Point: point, Strength: strength, MaxAcceleration: 100}
}

// AccelerationAt satisfies ForceField, returning the inverse-square
// acceleration toward Point.
func (f *PointAttractorForceField) AccelerationAt(pos vecmath.Vector3) vecmath.Vector3 {

	dir := f.Point
	dir.Sub(&pos)
	dist := dir.Length()
	if dist == 0 {
		return vecmath.Vector3{}
	}
	dir.Normalize()

	mag := f.Strength / (dist * dist)
	if mag > f.MaxAcceleration {
		mag = f.MaxAcceleration
	}
	dir.MultiplyScalar(mag)
	return dir
}
