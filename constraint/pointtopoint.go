// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/equation"
	"github.com/tormund/rigid3d/vecmath"
)

// PointToPoint connects two bodies at a local offset point in each,
// using three per-axis Contact equations made bidirectional (their
// MinForce overridden from 0 to -maxForce) since a pivot must be able
// to pull the bodies together as well as push them apart.
type PointToPoint struct {
	Constraint
	PivotA, PivotB vecmath.Vector3
	eqX, eqY, eqZ  *equation.Contact
}

// NewPointToPoint returns a PointToPoint constraint holding pivotA
// (local to bodyA) coincident with pivotB (local to bodyB).
func NewPointToPoint(bodyA, bodyB *body.Body, pivotA, pivotB vecmath.Vector3, maxForce float32) *PointToPoint {

	ptp := &PointToPoint{PivotA: pivotA, PivotB: pivotB}
	ptp.Constraint.initialize(bodyA, bodyB, true)

	ptp.eqX = equation.NewContact(bodyA, bodyB, maxForce)
	ptp.eqY = equation.NewContact(bodyA, bodyB, maxForce)
	ptp.eqZ = equation.NewContact(bodyA, bodyB, maxForce)
	ptp.eqX.MinForce, ptp.eqY.MinForce, ptp.eqZ.MinForce = -maxForce, -maxForce, -maxForce

	ptp.eqX.Normal = vecmath.Vector3{X: 1, Y: 0, Z: 0}
	ptp.eqY.Normal = vecmath.Vector3{X: 0, Y: 1, Z: 0}
	ptp.eqZ.Normal = vecmath.Vector3{X: 0, Y: 0, Z: 1}

	ptp.AddEquation(ptp.eqX)
	ptp.AddEquation(ptp.eqY)
	ptp.AddEquation(ptp.eqZ)

	return ptp
}

// Update rotates the local pivots into world-oriented offset vectors
// and stores them on each per-axis equation. Each body gets its own
// pivot's rotation applied, never the other's.
func (ptp *PointToPoint) Update() {

	rA := ptp.BodyA.Frame.DirectionPlaceIn(&ptp.PivotA)
	rB := ptp.BodyB.Frame.DirectionPlaceIn(&ptp.PivotB)

	ptp.eqX.RA, ptp.eqX.RB = rA, rB
	ptp.eqY.RA, ptp.eqY.RB = rA, rB
	ptp.eqZ.RA, ptp.eqZ.RB = rA, rB
}
