// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the projected Gauss-Seidel (sequential
// impulse) iteration that resolves a step's compiled SPOOK equations
// into per-body velocity changes.
// See https://en.wikipedia.org/wiki/Gauss-Seidel_method.
package solver

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/equation"
	"github.com/tormund/rigid3d/vecmath"
)

// solverBody is a pass-local accumulator of velocity change for one
// body, used instead of mutating the real Body mid-solve: every
// iteration reads only the deltas accumulated by prior equations this
// same pass, never the body's live velocity.
type solverBody struct {
	invMass         float32
	invInertiaWorld vecmath.Matrix3
	deltaV          vecmath.Vector3
	deltaW          vecmath.Vector3
}

// GaussSeidel is a projected Gauss-Seidel equation solver: more
// iterations yield a more accurate solution at more computation cost.
type GaussSeidel struct {
	MaxIterations int
	Tolerance     float32
	Iterations    int
}

// NewGaussSeidel returns a GaussSeidel solver with the corpus's default
// 20 iterations and 1e-7 convergence tolerance.
func NewGaussSeidel() *GaussSeidel {
	return &GaussSeidel{MaxIterations: 20, Tolerance: 1e-7}
}

// Solve iterates equations to convergence (or MaxIterations) and adds
// the resulting velocity and angular velocity changes directly onto
// each involved body. Every equation's Lambda is reset to 0 first:
// this solver never warm-starts across steps.
func (gs *GaussSeidel) Solve(dt float32, equations []equation.IEquation) {

	gs.Iterations = 0
	n := len(equations)
	if n == 0 {
		return
	}

	states := make(map[*body.Body]*solverBody)
	stateOf := func(b *body.Body) *solverBody {
		if s, ok := states[b]; ok {
			return s
		}
		s := &solverBody{
			invMass:         b.EffectiveInvMass(),
			invInertiaWorld: b.EffectiveInvInertiaWorld(),
		}
		states[b] = s
		return s
	}

	invCs := make([]float32, n)
	bs := make([]float32, n)
	lambdas := make([]float32, n)
	sA := make([]*solverBody, n)
	sB := make([]*solverBody, n)

	for i, eq := range equations {
		base := eq.Base()
		base.Lambda = 0
		base.RefreshSpookParams(dt)
		sA[i] = stateOf(base.BodyA)
		sB[i] = stateOf(base.BodyB)
		bs[i] = eq.ComputeB(dt)
		invCs[i] = 1.0 / eq.ComputeC()
	}

	tolSquared := gs.Tolerance * gs.Tolerance
	iter := 0
	for ; iter < gs.MaxIterations; iter++ {

		deltaLambdaTot := float32(0)

		for j, eq := range equations {
			base := eq.Base()
			if !base.Enabled {
				continue
			}

			if fr, ok := eq.(*equation.Friction); ok {
				bound := fr.Coefficient * fr.Contact.Lambda
				base.MinForce, base.MaxForce = -bound, bound
			}

			lambdaJ := lambdas[j]
			bodyStateA := sA[j]
			bodyStateB := sB[j]

			GWlambda := base.JeA.MultiplyVectors(&bodyStateA.deltaV, &bodyStateA.deltaW) +
				base.JeB.MultiplyVectors(&bodyStateB.deltaV, &bodyStateB.deltaW)

			deltaLambda := invCs[j] * (bs[j] - GWlambda - base.Eps*lambdaJ)

			if lambdaJ+deltaLambda < base.MinForce {
				deltaLambda = base.MinForce - lambdaJ
			} else if lambdaJ+deltaLambda > base.MaxForce {
				deltaLambda = base.MaxForce - lambdaJ
			}
			lambdas[j] += deltaLambda
			base.Lambda = lambdas[j]
			deltaLambdaTot += vecmath.Abs(deltaLambda)

			spatA := base.JeA.Spatial
			spatA.MultiplyScalar(bodyStateA.invMass * deltaLambda)
			bodyStateA.deltaV.Add(&spatA)

			spatB := base.JeB.Spatial
			spatB.MultiplyScalar(bodyStateB.invMass * deltaLambda)
			bodyStateB.deltaV.Add(&spatB)

			rotA := base.JeA.Rotational
			rotA.ApplyMatrix3(&bodyStateA.invInertiaWorld)
			rotA.MultiplyScalar(deltaLambda)
			bodyStateA.deltaW.Add(&rotA)

			rotB := base.JeB.Rotational
			rotB.ApplyMatrix3(&bodyStateB.invInertiaWorld)
			rotB.MultiplyScalar(deltaLambda)
			bodyStateB.deltaW.Add(&rotB)
		}

		if deltaLambdaTot*deltaLambdaTot < tolSquared {
			break
		}
	}

	gs.Iterations = iter + 1

	for b, s := range states {
		b.LinearVelocity.Add(&s.deltaV)
		b.AngularVelocity.Add(&s.deltaW)
	}
}
