// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/equation"
	"github.com/tormund/rigid3d/vecmath"
)

// Lock removes every degree of freedom between two bodies: a
// PointToPoint pivot at their midpoint, plus three Rotational
// equations holding three genuinely orthogonal local axis pairs
// (x_A⊥y_B, y_A⊥z_B, z_A⊥x_B) at 90°, which between them pin the
// bodies' relative orientation completely.
type Lock struct {
	PointToPoint
	rotEq1, rotEq2, rotEq3 *equation.Rotational
	xA, yA, zA, xB, yB, zB vecmath.Vector3
}

// NewLock returns a Lock constraint welding bodyA and bodyB at their
// current relative pose.
func NewLock(bodyA, bodyB *body.Body, maxForce float32) *Lock {

	halfway := bodyA.Frame.Position
	halfway.Add(&bodyB.Frame.Position)
	halfway.MultiplyScalar(0.5)

	pivotA := bodyA.Frame.PointRelativeTo(&halfway)
	pivotB := bodyB.Frame.PointRelativeTo(&halfway)

	lc := &Lock{}
	lc.PointToPoint = *NewPointToPoint(bodyA, bodyB, pivotA, pivotB, maxForce)

	unitX := vecmath.Vector3{X: 1, Y: 0, Z: 0}
	unitY := vecmath.Vector3{X: 0, Y: 1, Z: 0}
	unitZ := vecmath.Vector3{X: 0, Y: 0, Z: 1}

	lc.xA = bodyA.Frame.DirectionRelativeTo(&unitX)
	lc.yA = bodyA.Frame.DirectionRelativeTo(&unitY)
	lc.zA = bodyA.Frame.DirectionRelativeTo(&unitZ)
	lc.xB = bodyB.Frame.DirectionRelativeTo(&unitX)
	lc.yB = bodyB.Frame.DirectionRelativeTo(&unitY)
	lc.zB = bodyB.Frame.DirectionRelativeTo(&unitZ)

	lc.rotEq1 = equation.NewRotational(bodyA, bodyB, maxForce)
	lc.rotEq2 = equation.NewRotational(bodyA, bodyB, maxForce)
	lc.rotEq3 = equation.NewRotational(bodyA, bodyB, maxForce)

	lc.AddEquation(lc.rotEq1)
	lc.AddEquation(lc.rotEq2)
	lc.AddEquation(lc.rotEq3)

	return lc
}

// Update recomputes the pivot offset and the three world-space axis
// pairs the rotational equations hold orthogonal.
func (lc *Lock) Update() {

	lc.PointToPoint.Update()

	xAw := lc.BodyA.Frame.DirectionPlaceIn(&lc.xA)
	yAw := lc.BodyA.Frame.DirectionPlaceIn(&lc.yA)
	zAw := lc.BodyA.Frame.DirectionPlaceIn(&lc.zA)
	xBw := lc.BodyB.Frame.DirectionPlaceIn(&lc.xB)
	yBw := lc.BodyB.Frame.DirectionPlaceIn(&lc.yB)
	zBw := lc.BodyB.Frame.DirectionPlaceIn(&lc.zB)

	lc.rotEq1.AxisA, lc.rotEq1.AxisB = xAw, yBw
	lc.rotEq2.AxisA, lc.rotEq2.AxisB = yAw, zBw
	lc.rotEq3.AxisA, lc.rotEq3.AxisB = zAw, xBw
}
