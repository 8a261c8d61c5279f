// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"testing"

	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/constraint"
	"github.com/tormund/rigid3d/vecmath"
)

func TestSphereFallsUnderGravity(t *testing.T) {

	w := New()
	id := w.Add(body.NewSphere(1, 0.5).MoveTo(vecmath.Vector3{X: 0, Y: 10, Z: 0}))

	for i := 0; i < 10; i++ {
		if err := w.Simulate(1.0 / 60); err != nil {
			t.Fatalf("Simulate returned error: %v", err)
		}
	}

	b := w.Bodies()[id]
	if b.Frame.Position.Y >= 10 {
		t.Errorf("sphere Y = %v, want < 10 after falling under gravity", b.Frame.Position.Y)
	}
	if b.LinearVelocity.Y >= 0 {
		t.Errorf("sphere LinearVelocity.Y = %v, want < 0", b.LinearVelocity.Y)
	}
}

func TestSphereRestsOnPlane(t *testing.T) {

	w := NewWithGravity(vecmath.Vector3{X: 0, Y: 0, Z: -10})
	w.Add(body.NewPlane())
	id := w.Add(body.NewSphere(1, 0.5).MoveTo(vecmath.Vector3{X: 0, Y: 0, Z: 0.5}))

	for i := 0; i < 120; i++ {
		if err := w.Simulate(1.0 / 60); err != nil {
			t.Fatalf("Simulate returned error: %v", err)
		}
	}

	b := w.Bodies()[id]
	if b.Frame.Position.Z < 0.4 {
		t.Errorf("sphere Z = %v, sank through the plane", b.Frame.Position.Z)
	}
}

func TestStaticBodyNeverMoves(t *testing.T) {

	w := New()
	id := w.Add(body.NewPlane())

	for i := 0; i < 10; i++ {
		w.Simulate(1.0 / 60)
	}

	b := w.Bodies()[id]
	if b.Frame.Position.Y != 0 {
		t.Errorf("static plane moved to Y = %v, want 0", b.Frame.Position.Y)
	}
}

func TestRemoveDropsBodyFromSimulation(t *testing.T) {

	w := New()
	id := w.Add(body.NewSphere(1, 0.5))
	w.Remove(id)

	if _, ok := w.Bodies()[id]; ok {
		t.Error("removed body still present in Bodies()")
	}
	if err := w.Simulate(1.0 / 60); err != nil {
		t.Fatalf("Simulate returned error after removal: %v", err)
	}
}

func TestKeepIfFiltersBodies(t *testing.T) {

	w := New()
	idA := w.Add(body.NewSphere(1, 0.5).MoveTo(vecmath.Vector3{X: 0, Y: 100, Z: 0}))
	idB := w.Add(body.NewSphere(1, 0.5).MoveTo(vecmath.Vector3{X: 0, Y: -100, Z: 0}))

	w.KeepIf(func(b *body.Body) bool { return b.Frame.Position.Y > 0 })

	if _, ok := w.Bodies()[idA]; !ok {
		t.Error("KeepIf dropped a body that satisfied the predicate")
	}
	if _, ok := w.Bodies()[idB]; ok {
		t.Error("KeepIf kept a body that failed the predicate")
	}
}

func TestLockConstraintHoldsBodiesTogether(t *testing.T) {

	w := New()
	idA := w.Add(body.NewSphere(1, 0.5).MoveTo(vecmath.Vector3{X: 0, Y: 5, Z: 0}).WithBehavior(body.Static))
	idB := w.Add(body.NewSphere(1, 0.5).MoveTo(vecmath.Vector3{X: 0, Y: 3, Z: 0}))

	lc := constraint.NewLock(w.Bodies()[idA], w.Bodies()[idB], 1e6)
	w.AddConstraint(idA, idB, lc)

	for i := 0; i < 30; i++ {
		if err := w.Simulate(1.0 / 60); err != nil {
			t.Fatalf("Simulate returned error: %v", err)
		}
	}

	bodyB := w.Bodies()[idB]
	if bodyB.Frame.Position.Y < 1 {
		t.Errorf("locked body fell to Y = %v, want roughly held near its pivot", bodyB.Frame.Position.Y)
	}
}

func TestRaycastHitsGroundPlane(t *testing.T) {

	w := New()
	w.Add(body.NewPlane())

	hit, ok := w.Raycast(vecmath.Ray{
		Origin:    vecmath.Vector3{X: 0, Y: 0, Z: 5},
		Direction: vecmath.Vector3{X: 0, Y: 0, Z: -1},
	})
	if !ok {
		t.Fatal("Raycast found no hit against the ground plane")
	}
	if vecmath.Abs(hit.Distance-5) > 1e-3 {
		t.Errorf("hit distance = %v, want 5", hit.Distance)
	}
}

type recordingLogger struct {
	calls int
}

func (l *recordingLogger) Printf(format string, v ...interface{}) {
	l.calls++
}

func TestLoggerReceivesSolverNonConvergenceNotice(t *testing.T) {

	w := New()
	w.Add(body.NewSphere(1, 0.5).WithBehavior(body.Static))
	w.Add(body.NewSphere(1, 0.5))

	w.Solver.MaxIterations = 1
	w.Solver.Tolerance = -1

	rec := &recordingLogger{}
	w.Logger = rec

	if err := w.Simulate(1.0 / 60); err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}

	if rec.calls == 0 {
		t.Error("Logger.Printf was never called for a non-converging solve")
	}
}
