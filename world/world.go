// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package world ties bodies, shapes, collision and constraints together
// into a steppable simulation: World.Simulate(dt) runs one fixed-step
// pass of the whole pipeline, synchronously and single-threaded, the
// way the corpus's own internalStep does.
package world

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/collision"
	"github.com/tormund/rigid3d/constraint"
	"github.com/tormund/rigid3d/equation"
	"github.com/tormund/rigid3d/solver"
	"github.com/tormund/rigid3d/vecmath"
)

// ConstraintBinding pairs a joint with the two bodies it was created
// between, so World can look the bodies back up by ID (e.g. to prune
// broad-phase pairs when CollideConnected is false).
type ConstraintBinding struct {
	BodyA, BodyB body.ID
	Constraint   constraint.Constrainer
}

// World is the top-level simulation aggregate: every body, force field,
// constraint and the solver that resolves them each step.
//
// World is exclusively owned and mutated by Simulate during a step;
// between steps the caller may add/remove bodies and constraints or
// mutate body state freely. World is not safe for concurrent use from
// multiple goroutines without external synchronization.
type World struct {
	Gravity          vecmath.Vector3
	ForceFields      []ForceField
	Constraints      []ConstraintBinding
	ContactMaterials *ContactMaterials
	AllowSleep       bool
	SimulatedTime    float32
	Solver           *solver.GaussSeidel
	Logger           Logger

	bodies map[body.ID]*body.Body
	order  []body.ID
	nextID body.ID

	lastContacts []collision.Contact
}

// New returns a World with Earth-surface gravity (0, -9.81, 0).
func New() *World {
	return NewWithGravity(vecmath.Vector3{X: 0, Y: -9.81, Z: 0})
}

// NewWithGravity returns an empty World with the given gravity.
func NewWithGravity(g vecmath.Vector3) *World {
	return &World{
		Gravity:          g,
		ContactMaterials: NewContactMaterials(),
		AllowSleep:       true,
		Solver:           solver.NewGaussSeidel(),
		bodies:           make(map[body.ID]*body.Body),
	}
}

// Add assigns b a fresh ID, adds it to the world, and returns that ID.
func (w *World) Add(b *body.Body) body.ID {

	w.nextID++
	b.ID = w.nextID
	w.bodies[b.ID] = b
	w.order = append(w.order, b.ID)
	return b.ID
}

// Remove drops the body with the given ID from the world. Constraints
// and force fields referencing it are left in place; a removed body's
// ID is never reused.
func (w *World) Remove(id body.ID) {
	delete(w.bodies, id)
}

// Update looks up the body with the given ID and, if present, calls fn
// on it.
func (w *World) Update(id body.ID, fn func(*body.Body)) {
	if b, ok := w.bodies[id]; ok {
		fn(b)
	}
}

// KeepIf removes every body for which pred returns false.
func (w *World) KeepIf(pred func(*body.Body) bool) {
	for id, b := range w.bodies {
		if !pred(b) {
			delete(w.bodies, id)
		}
	}
}

// AddConstraint registers a joint between the bodies with the given
// IDs.
func (w *World) AddConstraint(a, b body.ID, c constraint.Constrainer) {
	w.Constraints = append(w.Constraints, ConstraintBinding{BodyA: a, BodyB: b, Constraint: c})
}

// Bodies returns the world's body table, keyed by ID.
func (w *World) Bodies() map[body.ID]*body.Body {
	return w.bodies
}

// Contacts returns the contact points generated by the most recent
// Simulate call, for debugging/visualization.
func (w *World) Contacts() []collision.Contact {
	return w.lastContacts
}

// Raycast returns the closest hit along ray across every body in the
// world, or ok=false if the ray hits nothing.
func (w *World) Raycast(ray vecmath.Ray) (collision.RaycastHit, bool) {

	var caster collision.Raycaster
	return caster.IntersectWorld(&ray, w.activeBodies())
}

// activeBodies returns the world's bodies in insertion order, skipping
// any ID that has since been removed.
func (w *World) activeBodies() []*body.Body {

	bodies := make([]*body.Body, 0, len(w.order))
	kept := w.order[:0]
	for _, id := range w.order {
		if b, ok := w.bodies[id]; ok {
			bodies = append(bodies, b)
			kept = append(kept, id)
		}
	}
	w.order = kept
	return bodies
}

// Simulate advances the world by dt through the full step pipeline:
//
//  1. apply gravity and force fields to dynamic bodies
//  2. integrate velocities from accumulated force/torque
//  3. update each body's world-space inverse inertia
//  4. broad phase: find candidate colliding pairs
//  5. narrow phase: generate contact points for each pair
//  6. compile contact/friction/constraint equations (no warm start)
//  7. run the Gauss-Seidel solver, applying velocity deltas to bodies
//  8. integrate positions from the solved velocities
//  9. clear forces, advance SimulatedTime, tick the sleep state machine
//
// Simulate never fails; it returns error only to leave room for a
// future degenerate-configuration diagnostic.
func (w *World) Simulate(dt float32) error {

	bodies := w.activeBodies()

	for _, b := range bodies {
		if b.Behavior != body.Dynamic || b.SleepState == body.Sleeping {
			continue
		}
		b.ApplyForceField(w.Gravity)
		for _, ff := range w.ForceFields {
			b.ApplyForceField(ff.AccelerationAt(b.Frame.Position))
		}
	}

	for _, b := range bodies {
		b.IntegrateVelocity(dt)
	}
	for _, b := range bodies {
		b.UpdateInertiaWorld(false)
	}

	pairs := collision.BroadPhase(bodies)
	pairs = w.prunePairs(bodies, pairs)

	var contacts []collision.Contact
	for _, p := range pairs {
		contacts = append(contacts, collision.NarrowPhase(bodies[p.A], bodies[p.B])...)
	}
	w.lastContacts = contacts

	equations := w.buildEquations(contacts)

	w.Solver.Solve(dt, equations)

	// Solve leaves Iterations at MaxIterations+1 only when its
	// tolerance break never fired.
	if w.Logger != nil && w.Solver.MaxIterations > 0 && w.Solver.Iterations > w.Solver.MaxIterations {
		w.Logger.Printf("world: solver did not converge within %d iterations (%d equations)",
			w.Solver.MaxIterations, len(equations))
	}

	for _, b := range bodies {
		b.IntegratePosition(dt, true)
	}

	for _, b := range bodies {
		b.ClearForces()
	}

	w.SimulatedTime += dt

	if w.AllowSleep {
		for _, b := range bodies {
			b.SleepTick(dt)
		}
	}

	return nil
}

// prunePairs drops pairs whose two bodies are connected by a constraint
// with CollideConnected false.
func (w *World) prunePairs(bodies []*body.Body, pairs []collision.Pair) []collision.Pair {

	if len(w.Constraints) == 0 {
		return pairs
	}

	blocked := make(map[[2]body.ID]bool)
	for _, binding := range w.Constraints {
		if !binding.Constraint.Base().CollideConnected {
			blocked[[2]body.ID{binding.BodyA, binding.BodyB}] = true
			blocked[[2]body.ID{binding.BodyB, binding.BodyA}] = true
		}
	}

	kept := pairs[:0]
	for _, p := range pairs {
		key := [2]body.ID{bodies[p.A].ID, bodies[p.B].ID}
		if blocked[key] {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// buildEquations compiles this step's contact (with friction) and
// user-constraint equations. Every equation's Lambda starts at 0: this
// solver never warm-starts across steps.
func (w *World) buildEquations(contacts []collision.Contact) []equation.IEquation {

	var equations []equation.IEquation

	for i := range contacts {
		c := &contacts[i]
		mat := w.ContactMaterials.Combine(c.BodyA.Material, c.BodyB.Material)

		ra := c.Pi
		ra.Sub(&c.BodyA.Frame.Position)
		rb := c.Pj
		rb.Sub(&c.BodyB.Frame.Position)

		ce := equation.NewContact(c.BodyA, c.BodyB, 1e6)
		ce.Normal = c.Ni
		ce.RA = ra
		ce.RB = rb
		ce.Restitution = mat.Bounciness
		equations = append(equations, ce)

		t1, t2 := c.Ni.RandomTangents()

		f1 := equation.NewFriction(c.BodyA, c.BodyB, ce, mat.Friction)
		f1.Tangent = *t1
		f1.RA, f1.RB = ra, rb
		equations = append(equations, f1)

		f2 := equation.NewFriction(c.BodyA, c.BodyB, ce, mat.Friction)
		f2.Tangent = *t2
		f2.RA, f2.RB = ra, rb
		equations = append(equations, f2)
	}

	for _, binding := range w.Constraints {
		binding.Constraint.Update()
		equations = append(equations, binding.Constraint.Base().Equations...)
	}

	return equations
}
