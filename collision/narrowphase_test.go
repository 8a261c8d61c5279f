// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import (
	"testing"

	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/vecmath"
)

func TestPlaneSphereContact(t *testing.T) {

	plane := body.NewPlane()
	sphere := body.NewSphere(1, 1)
	sphere.MoveTo(vecmath.Vector3{X: 0, Y: 0, Z: 0.5})

	contacts := NarrowPhase(plane, sphere)
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}
	c := contacts[0]
	if c.Depth <= 0 {
		t.Fatalf("expected penetration, got depth %v", c.Depth)
	}
	if c.Ni.Z <= 0 {
		t.Fatalf("expected normal pointing up from plane, got %+v", c.Ni)
	}
}

func TestPlaneSphereNoContactWhenFar(t *testing.T) {

	plane := body.NewPlane()
	sphere := body.NewSphere(1, 1)
	sphere.MoveTo(vecmath.Vector3{X: 0, Y: 0, Z: 5})

	contacts := NarrowPhase(plane, sphere)
	if len(contacts) != 0 {
		t.Fatalf("expected no contact, got %d", len(contacts))
	}
}

func TestSphereSphereContact(t *testing.T) {

	a := body.NewSphere(1, 1)
	b := body.NewSphere(1, 1)
	b.MoveTo(vecmath.Vector3{X: 1.5, Y: 0, Z: 0})

	contacts := NarrowPhase(a, b)
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}
	if contacts[0].Ni.X <= 0 {
		t.Fatalf("expected normal pointing from a to b, got %+v", contacts[0].Ni)
	}
}

func TestDispatchIsSymmetric(t *testing.T) {

	plane := body.NewPlane()
	sphere := body.NewSphere(1, 1)
	sphere.MoveTo(vecmath.Vector3{X: 0, Y: 0, Z: 0.5})

	direct := NarrowPhase(plane, sphere)
	reversed := NarrowPhase(sphere, plane)

	if len(direct) != 1 || len(reversed) != 1 {
		t.Fatalf("expected symmetric single contact, got %d/%d", len(direct), len(reversed))
	}
	if direct[0].Ni.Z != -reversed[0].Ni.Z {
		t.Fatalf("expected reversed normal, got %v vs %v", direct[0].Ni.Z, reversed[0].Ni.Z)
	}
}

func TestBroadPhaseSkipsStaticPairs(t *testing.T) {

	bodies := []*body.Body{body.NewPlane(), body.NewPlane()}
	pairs := BroadPhase(bodies)
	if len(pairs) != 0 {
		t.Fatalf("expected no pairs between two static bodies, got %d", len(pairs))
	}
}

func TestBroadPhaseFindsOverlappingSpheres(t *testing.T) {

	a := body.NewSphere(1, 1)
	b := body.NewSphere(1, 1)
	b.MoveTo(vecmath.Vector3{X: 1, Y: 0, Z: 0})

	pairs := BroadPhase([]*body.Body{a, b})
	if len(pairs) != 1 {
		t.Fatalf("expected 1 overlapping pair, got %d", len(pairs))
	}
}

func TestConvexConvexOverlap(t *testing.T) {

	a := body.NewBlock(1, vecmath.Vector3{X: 1, Y: 1, Z: 1})
	b := body.NewBlock(1, vecmath.Vector3{X: 1, Y: 1, Z: 1})
	b.MoveTo(vecmath.Vector3{X: 1.5, Y: 0, Z: 0})

	contacts := NarrowPhase(a, b)
	if len(contacts) == 0 {
		t.Fatalf("expected overlap between blocks, got none")
	}
	for _, c := range contacts {
		if c.Depth < 0 {
			t.Fatalf("expected non-negative depth, got %v", c.Depth)
		}
	}
}

func TestRaycastHitsSphere(t *testing.T) {

	sphere := body.NewSphere(1, 1)
	sphere.MoveTo(vecmath.Vector3{X: 5, Y: 0, Z: 0})

	ray := vecmath.Ray{Origin: vecmath.Vector3{}, Direction: vecmath.Vector3{X: 1, Y: 0, Z: 0}}
	r := &Raycaster{}
	hit, ok := r.IntersectWorld(&ray, []*body.Body{sphere})
	if !ok {
		t.Fatalf("expected ray to hit sphere")
	}
	if hit.Distance <= 3 || hit.Distance >= 5 {
		t.Fatalf("unexpected hit distance %v", hit.Distance)
	}
}
