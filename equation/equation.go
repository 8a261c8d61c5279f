// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equation

import "github.com/tormund/rigid3d/body"

// IEquation is the interface the solver iterates over. Every equation
// type (the base Equation for plain joint rows, or Contact/Friction/
// Rotational/Cone) satisfies it: Base returns the embedded *Equation
// holding the shared Jacobian/Lambda/bounds state, while ComputeB and
// ComputeC resolve to whichever type's own override (or the base
// implementation, for a type that doesn't need one).
type IEquation interface {
	ComputeB(h float32) float32
	ComputeC() float32
	Base() *Equation
}

// Base returns e itself, satisfying IEquation for the base Equation and,
// via struct embedding, for every equation type built on top of it.
func (e *Equation) Base() *Equation { return e }

// Equation is one scalar SPOOK constraint row between two bodies: a
// Jacobian (JeA, JeB), the regularization parameters (A, B, Eps) derived
// from stiffness/relaxation, and the impulse bounds the solver clamps
// its accumulated Lambda to.
type Equation struct {
	BodyA, BodyB *body.Body

	JeA, JeB JacobianElement

	// SPOOK regularization parameters, set by SetSpookParams.
	A, B, Eps float32

	// Stiffness and Relaxation are the SPOOK inputs A/B/Eps were last
	// derived from; RefreshSpookParams recomputes A/B/Eps from these at
	// the step's actual dt, so a caller stepping at a variable rate
	// doesn't silently solve against a stale 60Hz stiffness.
	Stiffness, Relaxation float32

	// MinForce/MaxForce bound the per-step impulse the solver may apply
	// through this equation (not a continuous force — see the solver's
	// clamp-bound open question).
	MinForce, MaxForce float32

	// Lambda is the equation's accumulated impulse across solver
	// iterations within one step; reset to 0 at the start of every step.
	Lambda float32

	Enabled bool
}

// NewEquation returns an Equation between bodyA and bodyB with the given
// impulse bounds, enabled, with the typical stiffness/relaxation spook
// parameters for a 60Hz step.
func NewEquation(bodyA, bodyB *body.Body, minForce, maxForce float32) *Equation {

	e := &Equation{
		BodyA:    bodyA,
		BodyB:    bodyB,
		MinForce: minForce,
		MaxForce: maxForce,
		Enabled:  true,
	}
	e.SetSpookParams(1e7, 3, 1.0/60)
	return e
}

// SetSpookParams records stiffness/relaxation as the equation's SPOOK
// targets and derives A, B and Eps for the given step size, using the
// corpus's three-parameter SPOOK form:
//
//	a   = 4 / (dt·(1+4·relaxation))
//	b   = 4·relaxation / (1+4·relaxation)
//	eps = 4 / (dt²·stiffness·(1+4·relaxation))
func (e *Equation) SetSpookParams(stiffness, relaxation, dt float32) {

	e.Stiffness = stiffness
	e.Relaxation = relaxation
	e.A = 4 / (dt * (1 + 4*relaxation))
	e.B = (4 * relaxation) / (1 + 4*relaxation)
	e.Eps = 4 / (dt * dt * stiffness * (1 + 4*relaxation))
}

// RefreshSpookParams re-derives A, B and Eps from the equation's stored
// Stiffness/Relaxation at dt, the step size actually passed to
// Solve. A/B/Eps are dt-dependent (see SetSpookParams); without this,
// an equation built once at construction time would keep solving
// against whatever dt happened to be in effect when it was created,
// which is only correct for a caller that always steps at a fixed rate.
// Ported from cannon.js's GSSolver.solve, which recomputes every
// equation's spook params from the real step every call for the same
// reason.
func (e *Equation) RefreshSpookParams(dt float32) {

	e.SetSpookParams(e.Stiffness, e.Relaxation, dt)
}

// ComputeGq computes G·q: the Jacobian's spatial parts contracted with
// the two bodies' current positions, the position-level constraint
// violation used by the base ComputeB (Contact, Rotational and Cone
// compute their own position term instead; see their ComputeB).
func (e *Equation) ComputeGq() float32 {

	return e.JeA.Spatial.Dot(&e.BodyA.Frame.Position) + e.JeB.Spatial.Dot(&e.BodyB.Frame.Position)
}

// ComputeB computes the SPOOK right-hand side b = -A·Gq - B·GW - h·GiMf
// for a bare Equation. Contact, Friction, Rotational, Cone and
// RotationalMotor each override it with their own ComputeB; the joints
// in the constraint package are built from those types (PointToPoint
// and Distance from Contact, Hinge and Lock adding Rotational rows), so
// none of them reaches this base implementation.
func (e *Equation) ComputeB(h float32) float32 {

	return -e.ComputeGq()*e.A - e.ComputeGW()*e.B - e.ComputeGiMf()*h
}

// ComputeGW computes G·(v, ω): the equation's Jacobian contracted with
// the two bodies' current velocities.
func (e *Equation) ComputeGW() float32 {

	return e.JeA.MultiplyVectors(&e.BodyA.LinearVelocity, &e.BodyA.AngularVelocity) +
		e.JeB.MultiplyVectors(&e.BodyB.LinearVelocity, &e.BodyB.AngularVelocity)
}

// ComputeGiMf computes G·M⁻¹·f: the Jacobian contracted with the
// per-body force/torque scaled by inverse mass/inertia.
func (e *Equation) ComputeGiMf() float32 {

	linA := e.BodyA.Force
	linA.MultiplyScalar(e.BodyA.EffectiveInvMass())
	linB := e.BodyB.Force
	linB.MultiplyScalar(e.BodyB.EffectiveInvMass())

	invIA := e.BodyA.EffectiveInvInertiaWorld()
	invIB := e.BodyB.EffectiveInvInertiaWorld()
	angA := e.BodyA.Torque
	angA.ApplyMatrix3(&invIA)
	angB := e.BodyB.Torque
	angB.ApplyMatrix3(&invIB)

	return e.JeA.MultiplyVectors(&linA, &angA) + e.JeB.MultiplyVectors(&linB, &angB)
}

// ComputeGiMGt computes G·M⁻¹·Gᵀ: the denominator term every equation
// needs to form its effective mass 1/C.
func (e *Equation) ComputeGiMGt() float32 {

	invIA := e.BodyA.EffectiveInvInertiaWorld()
	invIB := e.BodyB.EffectiveInvInertiaWorld()

	rotA := e.JeA.Rotational
	rotA.ApplyMatrix3(&invIA)
	rotB := e.JeB.Rotational

	result := e.BodyA.EffectiveInvMass() + e.BodyB.EffectiveInvMass()
	result += rotA.Dot(&e.JeA.Rotational)
	rotB.ApplyMatrix3(&invIB)
	result += rotB.Dot(&e.JeB.Rotational)
	return result
}

// ComputeC computes C = G·M⁻¹·Gᵀ + Eps, the SPOOK regularized
// denominator.
func (e *Equation) ComputeC() float32 {

	return e.ComputeGiMGt() + e.Eps
}
