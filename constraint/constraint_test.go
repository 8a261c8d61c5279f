// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"testing"

	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/vecmath"
)

func newDynamicSphereAt(pos vecmath.Vector3) *body.Body {
	return body.NewSphere(1, 0.5).MoveTo(pos)
}

func TestPointToPointUsesDistinctPivotPerBody(t *testing.T) {

	bodyA := newDynamicSphereAt(vecmath.Vector3{X: -1, Y: 0, Z: 0})
	bodyB := newDynamicSphereAt(vecmath.Vector3{X: 1, Y: 0, Z: 0})

	pivotA := vecmath.Vector3{X: 1, Y: 0, Z: 0}
	pivotB := vecmath.Vector3{X: -1, Y: 0, Z: 0}

	ptp := NewPointToPoint(bodyA, bodyB, pivotA, pivotB, 1e6)
	ptp.Update()

	if !ptp.eqX.RA.AlmostEquals(&pivotA, 1e-5) {
		t.Errorf("eqX.RA = %v, want %v (bodyA's own pivot)", ptp.eqX.RA, pivotA)
	}
	if !ptp.eqX.RB.AlmostEquals(&pivotB, 1e-5) {
		t.Errorf("eqX.RB = %v, want %v (bodyB's own pivot, not bodyA's)", ptp.eqX.RB, pivotB)
	}
}

func TestPointToPointEquationsAreBidirectional(t *testing.T) {

	bodyA := newDynamicSphereAt(vecmath.Vector3{})
	bodyB := newDynamicSphereAt(vecmath.Vector3{X: 1, Y: 0, Z: 0})

	ptp := NewPointToPoint(bodyA, bodyB, vecmath.Vector3{}, vecmath.Vector3{}, 1e6)
	if ptp.eqX.MinForce != -1e6 {
		t.Errorf("eqX.MinForce = %v, want -1e6 (pivot constraints must pull as well as push)", ptp.eqX.MinForce)
	}
}

func TestLockUsesThreeDistinctAxisPairs(t *testing.T) {

	bodyA := newDynamicSphereAt(vecmath.Vector3{})
	bodyB := newDynamicSphereAt(vecmath.Vector3{X: 1, Y: 0, Z: 0})

	lc := NewLock(bodyA, bodyB, 1e6)

	if lc.xA.AlmostEquals(&lc.yA, 1e-5) {
		t.Error("Lock's xA and yA must be distinct orthogonal axes, not the same vector")
	}
	if lc.yA.AlmostEquals(&lc.zA, 1e-5) {
		t.Error("Lock's yA and zA must be distinct orthogonal axes, not the same vector")
	}

	lc.Update()
	if len(lc.Equations) != 6 {
		t.Errorf("Lock has %d equations, want 6 (3 pivot + 3 rotational)", len(lc.Equations))
	}
}

func TestHingeMotorDisabledByDefault(t *testing.T) {

	bodyA := newDynamicSphereAt(vecmath.Vector3{})
	bodyB := newDynamicSphereAt(vecmath.Vector3{X: 1, Y: 0, Z: 0})

	hc := NewHinge(bodyA, bodyB, vecmath.Vector3{}, vecmath.Vector3{},
		vecmath.Vector3{X: 0, Y: 0, Z: 1}, vecmath.Vector3{X: 0, Y: 0, Z: 1}, 1e6)

	if hc.motorEq.Enabled {
		t.Error("Hinge motor must be disabled by default")
	}
	hc.Update()
}

func TestConeTwistLimitEquationsAreOneSided(t *testing.T) {

	bodyA := newDynamicSphereAt(vecmath.Vector3{})
	bodyB := newDynamicSphereAt(vecmath.Vector3{X: 1, Y: 0, Z: 0})

	ctc := NewConeTwist(bodyA, bodyB, vecmath.Vector3{}, vecmath.Vector3{},
		vecmath.Vector3{X: 0, Y: 1, Z: 0}, vecmath.Vector3{X: 0, Y: 1, Z: 0}, 0.5, 0.3, 1e6)

	if ctc.coneEq.MaxForce != 0 {
		t.Errorf("ConeTwist cone equation MaxForce = %v, want 0 (one-sided limit)", ctc.coneEq.MaxForce)
	}
	if ctc.twistEq.MaxForce != 0 {
		t.Errorf("ConeTwist twist equation MaxForce = %v, want 0 (one-sided limit)", ctc.twistEq.MaxForce)
	}
	ctc.Update()
}

func TestDistanceEquationTracksSeparation(t *testing.T) {

	bodyA := newDynamicSphereAt(vecmath.Vector3{})
	bodyB := newDynamicSphereAt(vecmath.Vector3{X: 2, Y: 0, Z: 0})

	dc := NewDistance(bodyA, bodyB, 2, 1e6)
	dc.Update()

	want := vecmath.Vector3{X: 1, Y: 0, Z: 0}
	if !dc.eq.Normal.AlmostEquals(&want, 1e-5) {
		t.Errorf("Distance normal = %v, want %v", dc.eq.Normal, want)
	}
}
