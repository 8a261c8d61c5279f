// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equation

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/vecmath"
)

// ContactBouncinessThreshold is the minimum closing speed along a
// contact's normal below which Restitution is suppressed. Without this,
// a body resting with nonzero Restitution would have its tiny
// settling velocity bounced back every step and never fall asleep.
const ContactBouncinessThreshold float32 = 1e-3

// Contact is a non-penetration constraint equation between two bodies
// at one contact point: NewContact sets MinForce to 0 (the normal
// impulse can only push the bodies apart, never pull them together).
// PointToPoint and Distance reuse it as a bidirectional row by lowering
// MinForce to -maxForce.
type Contact struct {
	Equation
	Restitution float32
	RA, RB      vecmath.Vector3 // contact point relative to each body's center
	Normal      vecmath.Vector3 // unit normal, BodyA -> BodyB
}

// NewContact returns a Contact equation with MinForce=0 and the given
// MaxForce (typically a large per-step impulse cap, following the
// corpus's NewContact(bodyA, bodyB, 0, 1e6) convention).
func NewContact(bodyA, bodyB *body.Body, maxForce float32) *Contact {

	ce := &Contact{}
	ce.Equation = *NewEquation(bodyA, bodyB, 0, maxForce)
	return ce
}

// ComputeB computes the SPOOK right-hand side for a contact: the
// position-level term is the signed penetration along Normal (negative
// when penetrating), and the velocity-level term folds in Restitution
// so a high-restitution contact adds a bounce-velocity bias.
func (ce *Contact) ComputeB(h float32) float32 {

	var rnA, rnB vecmath.Vector3
	rnA.CrossVectors(&ce.RA, &ce.Normal)
	rnB.CrossVectors(&ce.RB, &ce.Normal)

	ce.JeA.Spatial = ce.Normal
	ce.JeA.Spatial.Negate()
	ce.JeA.Rotational = rnA
	ce.JeA.Rotational.Negate()
	ce.JeB.Spatial = ce.Normal
	ce.JeB.Rotational = rnB

	var penetration vecmath.Vector3
	penetration.AddVectors(&ce.RB, &ce.BodyB.Frame.Position)
	var aSide vecmath.Vector3
	aSide.AddVectors(&ce.RA, &ce.BodyA.Frame.Position)
	penetration.Sub(&aSide)
	g := ce.Normal.Dot(&penetration)

	relVel := ce.BodyB.LinearVelocity.Dot(&ce.Normal) - ce.BodyA.LinearVelocity.Dot(&ce.Normal) +
		ce.BodyB.AngularVelocity.Dot(&rnB) - ce.BodyA.AngularVelocity.Dot(&rnA)

	restitution := ce.Restitution
	if vecmath.Abs(relVel) < ContactBouncinessThreshold {
		restitution = 0
	}

	ePlusOne := restitution + 1
	GW := ePlusOne*ce.BodyB.LinearVelocity.Dot(&ce.Normal) - ePlusOne*ce.BodyA.LinearVelocity.Dot(&ce.Normal) +
		ce.BodyB.AngularVelocity.Dot(&rnB) - ce.BodyA.AngularVelocity.Dot(&rnA)
	GiMf := ce.ComputeGiMf()

	return -g*ce.A - GW*ce.B - h*GiMf
}
