// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equation

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/vecmath"
)

// RotationalMotor drives the relative angular velocity of two bodies
// about a shared world axis toward TargetSpeed. Disabled by default on
// a Hinge; the solver skips any equation with Enabled false.
type RotationalMotor struct {
	Equation
	AxisA, AxisB vecmath.Vector3
	TargetSpeed  float32
}

// NewRotationalMotor returns a RotationalMotor equation, disabled.
func NewRotationalMotor(bodyA, bodyB *body.Body, maxForce float32) *RotationalMotor {

	me := &RotationalMotor{}
	me.Equation = *NewEquation(bodyA, bodyB, -maxForce, maxForce)
	me.Enabled = false
	return me
}

// ComputeB drives g' = AxisA·ω_A - AxisB·ω_B toward TargetSpeed; unlike
// the other joint equations there is no position-level term (g=0).
func (me *RotationalMotor) ComputeB(h float32) float32 {

	me.JeA.Rotational = me.AxisA
	negAxisB := me.AxisB
	negAxisB.Negate()
	me.JeB.Rotational = negAxisB

	GW := me.ComputeGW() - me.TargetSpeed
	GiMf := me.ComputeGiMf()

	return -GW*me.B - h*GiMf
}
