// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/equation"
)

// Distance holds two bodies' centers of mass at a constant separation.
type Distance struct {
	Constraint
	Distance float32
	eq       *equation.Contact
}

// NewDistance returns a Distance constraint holding bodyA and bodyB's
// centers distance apart, bidirectionally (push or pull).
func NewDistance(bodyA, bodyB *body.Body, distance, maxForce float32) *Distance {

	dc := &Distance{Distance: distance}
	dc.Constraint.initialize(bodyA, bodyB, true)

	dc.eq = equation.NewContact(bodyA, bodyB, maxForce)
	dc.eq.MinForce = -maxForce
	dc.AddEquation(dc.eq)

	return dc
}

// Update recomputes the equation's contact-point offsets along the
// current line between the two bodies' centers.
func (dc *Distance) Update() {

	halfDist := dc.Distance * 0.5

	normal := dc.BodyB.Frame.Position
	normal.Sub(&dc.BodyA.Frame.Position)
	normal.Normalize()

	ra := normal
	ra.MultiplyScalar(halfDist)
	rb := normal
	rb.MultiplyScalar(-halfDist)

	dc.eq.Normal = normal
	dc.eq.RA = ra
	dc.eq.RB = rb
}
