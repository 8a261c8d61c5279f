// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equation

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/vecmath"
)

// Friction is a tangential (no-slip) constraint equation paired with a
// Contact, bounded by ±(friction coefficient × current normal impulse) —
// that bound is recomputed every solver iteration from the paired
// Contact's latest Lambda, not fixed at construction time.
type Friction struct {
	Equation
	RA, RB  vecmath.Vector3
	Tangent vecmath.Vector3

	// Contact is the paired normal equation this friction equation
	// opposes slip against, and Coefficient the combined friction
	// coefficient of the two bodies' materials. The solver recomputes
	// MinForce/MaxForce as ±Coefficient·Contact.Lambda before applying
	// this equation each iteration.
	Contact     *Contact
	Coefficient float32
}

// NewFriction returns a Friction equation bounded by ±coefficient times
// the paired contact's current normal impulse, updated every solver
// iteration.
func NewFriction(bodyA, bodyB *body.Body, contact *Contact, coefficient float32) *Friction {

	fe := &Friction{Contact: contact, Coefficient: coefficient}
	fe.Equation = *NewEquation(bodyA, bodyB, 0, 0)
	return fe
}

// ComputeB computes the SPOOK right-hand side for a friction equation.
// Friction is a pure velocity constraint: its position-level error is
// always zero, so only the GW and GiMf terms contribute.
func (fe *Friction) ComputeB(h float32) float32 {

	var rtA, rtB vecmath.Vector3
	rtA.CrossVectors(&fe.RA, &fe.Tangent)
	rtB.CrossVectors(&fe.RB, &fe.Tangent)

	fe.JeA.Spatial = fe.Tangent
	fe.JeA.Spatial.Negate()
	fe.JeA.Rotational = rtA
	fe.JeA.Rotational.Negate()
	fe.JeB.Spatial = fe.Tangent
	fe.JeB.Rotational = rtB

	GW := fe.ComputeGW()
	GiMf := fe.ComputeGiMf()
	return -GW*fe.B - h*GiMf
}
