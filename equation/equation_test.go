// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equation

import (
	"testing"

	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/vecmath"
)

func newStaticPlane() *body.Body {
	return body.NewPlane().WithBehavior(body.Static)
}

func newSphereAt(mass, radius float32, pos vecmath.Vector3) *body.Body {
	return body.NewSphere(mass, radius).MoveTo(pos)
}

func TestSetSpookParamsMatchesThreeParameterForm(t *testing.T) {

	e := &Equation{}
	e.SetSpookParams(1e7, 3, 1.0/60)

	wantA := float32(4 / ((1.0 / 60) * (1 + 4*3)))
	wantB := float32((4 * 3.0) / (1 + 4*3.0))
	if vecmath.Abs(e.A-wantA) > 1e-3 {
		t.Errorf("A = %v, want %v", e.A, wantA)
	}
	if vecmath.Abs(e.B-wantB) > 1e-6 {
		t.Errorf("B = %v, want %v", e.B, wantB)
	}
}

func TestContactPenetrationSignIsNegativeWhenOverlapping(t *testing.T) {

	bodyA := newStaticPlane()
	bodyB := newSphereAt(1, 0.5, vecmath.Vector3{X: 0, Y: 0.3, Z: 0})

	ce := NewContact(bodyA, bodyB, 1e6)
	ce.Normal = vecmath.Vector3{X: 0, Y: 1, Z: 0}
	ce.RA = vecmath.Vector3{}
	ce.RB = vecmath.Vector3{X: 0, Y: -0.5, Z: 0}

	// The sphere's surface point sits 0.2 below the plane, so the
	// penetration term g is negative and, with both bodies at rest,
	// b = -g·A must come out positive.
	b := ce.ComputeB(1.0 / 60)
	if b <= 0 {
		t.Errorf("ComputeB = %v, want > 0 for an overlapping contact (negative penetration)", b)
	}
}

func TestFrictionStartsWithZeroBounds(t *testing.T) {

	bodyA := newStaticPlane()
	bodyB := newSphereAt(1, 0.5, vecmath.Vector3{})

	ce := NewContact(bodyA, bodyB, 1e6)
	fe := NewFriction(bodyA, bodyB, ce, 0.3)
	if fe.MinForce != 0 || fe.MaxForce != 0 {
		t.Errorf("MinForce/MaxForce = %v/%v, want 0/0 before the solver has accumulated any normal impulse", fe.MinForce, fe.MaxForce)
	}
	if fe.Coefficient != 0.3 {
		t.Errorf("Coefficient = %v, want 0.3", fe.Coefficient)
	}
}

func TestRotationalZeroAtOrthogonalAxes(t *testing.T) {

	bodyA := newStaticPlane()
	bodyB := newSphereAt(1, 0.5, vecmath.Vector3{})

	re := NewRotational(bodyA, bodyB, 1e6)
	re.AxisA = vecmath.Vector3{X: 1, Y: 0, Z: 0}
	re.AxisB = vecmath.Vector3{X: 0, Y: 1, Z: 0}
	re.MaxAngle = vecmath.Pi / 2

	g := vecmath.Cos(re.MaxAngle) - re.AxisA.Dot(&re.AxisB)
	if vecmath.Abs(g) > 1e-6 {
		t.Errorf("g = %v, want 0 for already-orthogonal axes", g)
	}
}

func TestConeZeroWhenAxesAlignedAndAngleZero(t *testing.T) {

	bodyA := newStaticPlane()
	bodyB := newSphereAt(1, 0.5, vecmath.Vector3{})

	axis := vecmath.Vector3{X: 0, Y: 1, Z: 0}
	ce := NewCone(bodyA, bodyB, axis, axis, 0, 1e6)

	g := vecmath.Cos(ce.Angle) - ce.AxisA.Dot(&ce.AxisB)
	if vecmath.Abs(g) > 1e-6 {
		t.Errorf("g = %v, want 0 for aligned axes at zero cone angle", g)
	}
	if ce.MinForce != 0 {
		t.Errorf("Cone MinForce = %v, want 0 (one-sided limit)", ce.MinForce)
	}
}
