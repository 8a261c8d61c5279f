// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constraint implements joints between bodies: each constraint
// compiles down to one or more equation.IEquation rows that the solver
// iterates over alongside contact/friction equations.
package constraint

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/equation"
)

// Constrainer is the interface the world holds its active joints as:
// Update recomputes each equation's world-space Jacobian data from the
// bodies' current pose, every step before the solver runs.
type Constrainer interface {
	Update()
	Base() *Constraint
}

// Constraint is the shared state every joint type embeds: the two
// bodies it connects, the equations it compiled, and whether the two
// bodies should still collide with each other through the narrow phase
// despite being jointed.
type Constraint struct {
	BodyA, BodyB     *body.Body
	Equations        []equation.IEquation
	CollideConnected bool
}

func (c *Constraint) initialize(bodyA, bodyB *body.Body, collideConnected bool) {

	c.BodyA = bodyA
	c.BodyB = bodyB
	c.CollideConnected = collideConnected
	bodyA.WakeUp()
	bodyB.WakeUp()
}

// AddEquation appends eq to the constraint's equation list.
func (c *Constraint) AddEquation(eq equation.IEquation) {

	c.Equations = append(c.Equations, eq)
}

// Base returns c itself, satisfying Constrainer for every joint type
// built on top of Constraint through struct embedding.
func (c *Constraint) Base() *Constraint { return c }

// SetEnabled enables or disables every equation in the constraint.
func (c *Constraint) SetEnabled(state bool) {

	for _, eq := range c.Equations {
		eq.Base().Enabled = state
	}
}
