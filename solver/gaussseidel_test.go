// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"testing"

	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/equation"
	"github.com/tormund/rigid3d/vecmath"
)

func TestSolveWithNoEquationsIsNoop(t *testing.T) {

	gs := NewGaussSeidel()
	gs.Solve(1.0/60, nil)
	if gs.Iterations != 0 {
		t.Errorf("Iterations = %v, want 0 for an empty equation set", gs.Iterations)
	}
}

func TestSolveResolvesPenetratingContactToNonNegativeNormalImpulse(t *testing.T) {

	plane := body.NewPlane().WithBehavior(body.Static)
	sphere := body.NewSphere(1, 0.5).MoveTo(vecmath.Vector3{X: 0, Y: 0.3, Z: 0})
	sphere.LinearVelocity = vecmath.Vector3{X: 0, Y: -1, Z: 0}

	ce := equation.NewContact(plane, sphere, 1e6)
	ce.Normal = vecmath.Vector3{X: 0, Y: 1, Z: 0}
	ce.RB = vecmath.Vector3{X: 0, Y: -0.5, Z: 0}

	gs := NewGaussSeidel()
	gs.Solve(1.0/60, []equation.IEquation{ce})

	if ce.Lambda < 0 {
		t.Errorf("Lambda = %v, want >= 0 for a non-penetration contact", ce.Lambda)
	}
	if gs.Iterations == 0 {
		t.Error("Iterations = 0, want at least one solver pass to have run")
	}
}

func TestFrictionBoundTracksContactLambda(t *testing.T) {

	plane := body.NewPlane().WithBehavior(body.Static)
	sphere := body.NewSphere(1, 0.5).MoveTo(vecmath.Vector3{X: 0, Y: 0.5, Z: 0})
	sphere.LinearVelocity = vecmath.Vector3{X: 1, Y: -1, Z: 0}

	ce := equation.NewContact(plane, sphere, 1e6)
	ce.Normal = vecmath.Vector3{X: 0, Y: 1, Z: 0}
	ce.RB = vecmath.Vector3{X: 0, Y: -0.5, Z: 0}

	fe := equation.NewFriction(plane, sphere, ce, 0.5)
	fe.Tangent = vecmath.Vector3{X: 1, Y: 0, Z: 0}
	fe.RB = ce.RB

	gs := NewGaussSeidel()
	gs.Solve(1.0/60, []equation.IEquation{ce, fe})

	bound := 0.5 * ce.Lambda
	if fe.Lambda < -bound-1e-3 || fe.Lambda > bound+1e-3 {
		t.Errorf("Friction Lambda = %v, want within ±%v of coefficient*normal impulse", fe.Lambda, bound)
	}
	if fe.Lambda >= 0 {
		t.Errorf("Friction Lambda = %v, want negative opposing the sphere's +X tangential slide", fe.Lambda)
	}
}
