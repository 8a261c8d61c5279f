// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equation

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/vecmath"
)

// Rotational keeps two world-space axes, one fixed in each body, at a
// target angle from each other: MaxAngle=π/2 holds them orthogonal
// (used by Lock's and Hinge's perpendicular-axis sub-equations),
// MaxAngle=0 holds them parallel; ConeTwist's twist sub-equation sets
// MaxAngle to its TwistAngle.
type Rotational struct {
	Equation
	AxisA, AxisB vecmath.Vector3
	MaxAngle     float32
}

// NewRotational returns a Rotational equation with AxisA=+X, AxisB=+Y
// and MaxAngle=π/2; callers set AxisA/AxisB/MaxAngle before use.
func NewRotational(bodyA, bodyB *body.Body, maxForce float32) *Rotational {

	re := &Rotational{
		AxisA:    vecmath.Vector3{X: 1, Y: 0, Z: 0},
		AxisB:    vecmath.Vector3{X: 0, Y: 1, Z: 0},
		MaxAngle: vecmath.Pi / 2,
	}
	re.Equation = *NewEquation(bodyA, bodyB, -maxForce, maxForce)
	return re
}

// ComputeB computes the SPOOK right-hand side for the angle constraint
// g = cos(MaxAngle) - AxisA·AxisB.
func (re *Rotational) ComputeB(h float32) float32 {

	var nAnB, nBnA vecmath.Vector3
	nAnB.CrossVectors(&re.AxisA, &re.AxisB)
	nBnA.CrossVectors(&re.AxisB, &re.AxisA)

	re.JeA.Rotational = nBnA
	re.JeB.Rotational = nAnB

	g := vecmath.Cos(re.MaxAngle) - re.AxisA.Dot(&re.AxisB)
	GW := re.ComputeGW()
	GiMf := re.ComputeGiMf()

	return -g*re.A - GW*re.B - h*GiMf
}
