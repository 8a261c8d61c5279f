// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/equation"
	"github.com/tormund/rigid3d/vecmath"
)

// Hinge is a PointToPoint pivot plus two Rotational equations that lock
// the bodies' rotation axes together, leaving only rotation about the
// shared axis free — a door hinge. An optional motor (disabled by
// default) drives rotation about that axis toward a target speed.
type Hinge struct {
	PointToPoint
	AxisA, AxisB vecmath.Vector3
	rotEq1       *equation.Rotational
	rotEq2       *equation.Rotational
	motorEq      *equation.RotationalMotor
}

// NewHinge returns a Hinge constraint rotating freely about axisA/axisB
// (normalized on construction), pivoting at pivotA/pivotB.
func NewHinge(bodyA, bodyB *body.Body, pivotA, pivotB, axisA, axisB vecmath.Vector3, maxForce float32) *Hinge {

	axisA.Normalize()
	axisB.Normalize()

	hc := &Hinge{AxisA: axisA, AxisB: axisB}
	hc.PointToPoint = *NewPointToPoint(bodyA, bodyB, pivotA, pivotB, maxForce)

	hc.rotEq1 = equation.NewRotational(bodyA, bodyB, maxForce)
	hc.rotEq2 = equation.NewRotational(bodyA, bodyB, maxForce)
	hc.motorEq = equation.NewRotationalMotor(bodyA, bodyB, maxForce)

	hc.AddEquation(hc.rotEq1)
	hc.AddEquation(hc.rotEq2)
	hc.AddEquation(hc.motorEq)

	return hc
}

// SetMotorEnabled turns the hinge's drive motor on or off.
func (hc *Hinge) SetMotorEnabled(state bool) { hc.motorEq.Enabled = state }

// SetMotorSpeed sets the motor's target angular speed about the hinge axis.
func (hc *Hinge) SetMotorSpeed(speed float32) { hc.motorEq.TargetSpeed = speed }

// SetMotorMaxForce bounds the motor's impulse symmetrically.
func (hc *Hinge) SetMotorMaxForce(maxForce float32) {
	hc.motorEq.MaxForce = maxForce
	hc.motorEq.MinForce = -maxForce
}

// Update recomputes the pivot offsets and the world-space axes the
// rotational equations lock together.
func (hc *Hinge) Update() {

	hc.PointToPoint.Update()

	worldAxisA := hc.BodyA.Frame.DirectionPlaceIn(&hc.AxisA)
	worldAxisB := hc.BodyB.Frame.DirectionPlaceIn(&hc.AxisB)

	t1, t2 := worldAxisA.RandomTangents()
	hc.rotEq1.AxisA = *t1
	hc.rotEq2.AxisA = *t2
	hc.rotEq1.AxisB = worldAxisB
	hc.rotEq2.AxisB = worldAxisB

	if hc.motorEq.Enabled {
		hc.motorEq.AxisA = hc.BodyA.Frame.DirectionPlaceIn(&hc.AxisA)
		hc.motorEq.AxisB = hc.BodyB.Frame.DirectionPlaceIn(&hc.AxisB)
	}
}
