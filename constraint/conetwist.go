// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/equation"
	"github.com/tormund/rigid3d/vecmath"
)

// ConeTwist is a shoulder-style joint: a PointToPoint pivot, a Cone
// equation limiting how far axisA may swing away from axisB (the swing
// cone), and a Rotational equation limiting twist about that axis.
// Both limit equations are one-sided (MaxForce=0, MinForce=-maxForce):
// they only push the bodies back toward the limit, never apart.
type ConeTwist struct {
	PointToPoint
	AxisA, AxisB      vecmath.Vector3
	coneEq            *equation.Cone
	twistEq           *equation.Rotational
	Angle, TwistAngle float32
}

// NewConeTwist returns a ConeTwist constraint pivoting at pivotA/pivotB
// with swing limit angle and twist limit twistAngle, both in radians.
func NewConeTwist(bodyA, bodyB *body.Body, pivotA, pivotB, axisA, axisB vecmath.Vector3, angle, twistAngle, maxForce float32) *ConeTwist {

	axisA.Normalize()
	axisB.Normalize()

	ctc := &ConeTwist{AxisA: axisA, AxisB: axisB, Angle: angle, TwistAngle: twistAngle}
	ctc.PointToPoint = *NewPointToPoint(bodyA, bodyB, pivotA, pivotB, maxForce)

	ctc.coneEq = equation.NewCone(bodyA, bodyB, axisA, axisB, angle, maxForce)
	ctc.coneEq.MaxForce = 0
	ctc.coneEq.MinForce = -maxForce

	ctc.twistEq = equation.NewRotational(bodyA, bodyB, maxForce)
	ctc.twistEq.AxisA = axisA
	ctc.twistEq.AxisB = axisB
	ctc.twistEq.MaxAngle = twistAngle
	ctc.twistEq.MaxForce = 0
	ctc.twistEq.MinForce = -maxForce

	ctc.AddEquation(ctc.coneEq)
	ctc.AddEquation(ctc.twistEq)

	return ctc
}

// Update recomputes the pivot offset, the cone equation's world-space
// swing axes and the twist equation's world-space tangent axes.
func (ctc *ConeTwist) Update() {

	ctc.PointToPoint.Update()

	worldAxisA := ctc.BodyA.Frame.DirectionPlaceIn(&ctc.AxisA)
	worldAxisB := ctc.BodyB.Frame.DirectionPlaceIn(&ctc.AxisB)

	ctc.coneEq.AxisA = worldAxisA
	ctc.coneEq.AxisB = worldAxisB
	ctc.coneEq.Angle = ctc.Angle

	tA, _ := ctc.AxisA.RandomTangents()
	tB, _ := ctc.AxisB.RandomTangents()
	ctc.twistEq.AxisA = ctc.BodyA.Frame.DirectionPlaceIn(tA)
	ctc.twistEq.AxisB = ctc.BodyB.Frame.DirectionPlaceIn(tB)
	ctc.twistEq.MaxAngle = ctc.TwistAngle
}
