// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equation

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/vecmath"
)

// Cone limits the angle between a world-space axis fixed in each body
// to Angle — ConeTwist's swing-limit sub-equation. Unlike Rotational
// this is a one-sided limit: the solver's MinForce/MaxForce bound is
// [0, maxForce], since the constraint only needs to push the axes back
// toward Angle when they have swung past it, never the reverse.
type Cone struct {
	Equation
	AxisA, AxisB vecmath.Vector3
	Angle        float32
}

// NewCone returns a Cone equation holding AxisA and AxisB at Angle
// apart, with a one-sided impulse bound [0, maxForce].
func NewCone(bodyA, bodyB *body.Body, axisA, axisB vecmath.Vector3, angle, maxForce float32) *Cone {

	ce := &Cone{
		AxisA: axisA,
		AxisB: axisB,
		Angle: angle,
	}
	ce.Equation = *NewEquation(bodyA, bodyB, 0, maxForce)
	return ce
}

// ComputeB computes the SPOOK right-hand side for g = cos(Angle) - AxisA·AxisB.
func (ce *Cone) ComputeB(h float32) float32 {

	var bxa, axb vecmath.Vector3
	bxa.CrossVectors(&ce.AxisB, &ce.AxisA)
	axb.CrossVectors(&ce.AxisA, &ce.AxisB)

	ce.JeA.Rotational = bxa
	ce.JeB.Rotational = axb

	g := vecmath.Cos(ce.Angle) - ce.AxisA.Dot(&ce.AxisB)
	GW := ce.ComputeGW()
	GiMf := ce.ComputeGiMf()

	return -g*ce.A - GW*ce.B - h*GiMf
}
