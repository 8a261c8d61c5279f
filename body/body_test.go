// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import (
	"testing"

	"github.com/tormund/rigid3d/vecmath"
)

func TestNewSphereMassProperties(t *testing.T) {

	b := NewSphere(2, 0.5)
	if b.InvMass != 0.5 {
		t.Fatalf("InvMass = %v, want 0.5", b.InvMass)
	}
	if !b.InvInertiaLocal.IsIsotropic() {
		t.Fatalf("sphere inertia should be isotropic")
	}
}

func TestStaticBodyHasZeroInverseMass(t *testing.T) {

	b := NewPlane()
	if b.InvMass != 0 {
		t.Fatalf("static body InvMass = %v, want 0", b.InvMass)
	}
	if b.Behavior != Static {
		t.Fatalf("NewPlane should default to Static behavior")
	}
}

func TestIntegrateUnderGravity(t *testing.T) {

	b := NewSphere(1, 1)
	b.ApplyForceField(vecmath.Vector3{X: 0, Y: 0, Z: -10})

	dt := float32(1.0 / 60)
	b.Integrate(dt, false)

	if b.LinearVelocity.Z >= 0 {
		t.Fatalf("expected downward velocity after gravity integration, got %v", b.LinearVelocity.Z)
	}
	if b.Frame.Position.Z >= 0 {
		t.Fatalf("expected body to have moved down, got %v", b.Frame.Position.Z)
	}
}

func TestStaticBodyNeverIntegrates(t *testing.T) {

	b := NewPlane()
	b.LinearVelocity = vecmath.Vector3{X: 1, Y: 0, Z: 0}
	b.Integrate(1, false)

	if b.Frame.Position != (vecmath.Vector3{}) {
		t.Fatalf("static body moved: %v", b.Frame.Position)
	}
}

func TestApplyImpulseChangesVelocity(t *testing.T) {

	b := NewSphere(1, 1)
	b.ApplyImpulse(vecmath.Vector3{X: 1, Y: 0, Z: 0}, b.Frame.Position)

	if b.LinearVelocity.X <= 0 {
		t.Fatalf("expected positive X velocity after impulse, got %v", b.LinearVelocity.X)
	}
}

func TestSleepTickTransitionsToSleeping(t *testing.T) {

	b := NewSphere(1, 1)
	b.SleepTimeLimit = 0.1
	b.SleepSpeedLimit = 0.5

	for i := 0; i < 20; i++ {
		b.SleepTick(0.1)
	}

	if b.SleepState != Sleeping {
		t.Fatalf("body never fell asleep, state = %v", b.SleepState)
	}
}

func TestSleepTickWakesOnMotion(t *testing.T) {

	b := NewSphere(1, 1)
	b.SleepState = Sleepy
	b.LinearVelocity = vecmath.Vector3{X: 5, Y: 0, Z: 0}
	b.SleepTick(0.1)

	if b.SleepState != Awake {
		t.Fatalf("body should wake up when moving fast, got %v", b.SleepState)
	}
}

func TestCollidableWith(t *testing.T) {

	s1 := NewPlane()
	s2 := NewPlane()
	if CollidableWith(s1, s2) {
		t.Fatalf("two static bodies should never be collidable")
	}

	dyn := NewSphere(1, 1)
	if !CollidableWith(s1, dyn) {
		t.Fatalf("static vs dynamic should be collidable")
	}
}

func TestBoundingBoxForSphere(t *testing.T) {

	b := NewSphere(1, 2)
	b.MoveTo(vecmath.Vector3{X: 5, Y: 0, Z: 0})
	box := b.BoundingBox()

	if box.Min.X != 3 || box.Max.X != 7 {
		t.Fatalf("unexpected bounding box: %+v", box)
	}
}

func TestDataIsNilUntilSet(t *testing.T) {

	b := NewSphere(1, 1)
	if b.Data() != nil {
		t.Fatalf("Data() = %v, want nil on a fresh body", b.Data())
	}

	type entityHandle struct{ id int }
	b.WithData(entityHandle{id: 42})

	got, ok := b.Data().(entityHandle)
	if !ok || got.id != 42 {
		t.Fatalf("Data() = %v, want entityHandle{id: 42}", b.Data())
	}
}
