// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/shape"
	"github.com/tormund/rigid3d/vecmath"
)

// NarrowPhase computes every contact between a shape instance of bodyA
// and a shape instance of bodyB, dispatching on shape kind. Contacts are
// oriented so Ni always points from bodyA towards bodyB.
func NarrowPhase(bodyA, bodyB *body.Body) []Contact {

	var out []Contact
	for i := range bodyA.Shapes {
		for j := range bodyB.Shapes {
			out = append(out, dispatchPair(bodyA, i, bodyB, j)...)
		}
	}
	return out
}

// dispatchPair routes one shape-instance pair to its narrow-phase
// kernel. Pairs not covered in natural (kindA, kindB) order are solved
// by calling the reversed kernel and flipping the resulting contact.
func dispatchPair(bodyA *body.Body, i int, bodyB *body.Body, j int) []Contact {

	shapeA := bodyA.Shapes[i].Shape
	shapeB := bodyB.Shapes[j].Shape
	tA := bodyA.WorldTransform(i)
	tB := bodyB.WorldTransform(j)

	kindA, kindB := shapeA.Kind(), shapeB.Kind()

	switch {
	case kindA == shape.KindPlane && kindB == shape.KindPlane:
		return nil

	case kindA == shape.KindPlane && kindB == shape.KindSphere:
		return planeSphere(bodyA, bodyB, &tA, &tB, shapeB.(*shape.Sphere).Radius)
	case kindA == shape.KindSphere && kindB == shape.KindPlane:
		return flip(planeSphere(bodyB, bodyA, &tB, &tA, shapeA.(*shape.Sphere).Radius))

	case kindA == shape.KindPlane && kindB == shape.KindParticle:
		return planeSphere(bodyA, bodyB, &tA, &tB, 0)
	case kindA == shape.KindParticle && kindB == shape.KindPlane:
		return flip(planeSphere(bodyB, bodyA, &tB, &tA, 0))

	case kindA == shape.KindPlane && kindB == shape.KindConvex:
		return planeConvex(bodyA, bodyB, &tA, &tB, shapeB.(*shape.Convex))
	case kindA == shape.KindConvex && kindB == shape.KindPlane:
		return flip(planeConvex(bodyB, bodyA, &tB, &tA, shapeA.(*shape.Convex)))

	case kindA == shape.KindSphere && kindB == shape.KindSphere:
		return sphereSphere(bodyA, bodyB, &tA, &tB, shapeA.(*shape.Sphere).Radius, shapeB.(*shape.Sphere).Radius)

	case kindA == shape.KindSphere && kindB == shape.KindParticle:
		return sphereSphere(bodyA, bodyB, &tA, &tB, shapeA.(*shape.Sphere).Radius, 0)
	case kindA == shape.KindParticle && kindB == shape.KindSphere:
		return flip(sphereSphere(bodyB, bodyA, &tB, &tA, shapeB.(*shape.Sphere).Radius, 0))

	case kindA == shape.KindSphere && kindB == shape.KindConvex:
		return sphereConvex(bodyA, bodyB, &tA, &tB, shapeA.(*shape.Sphere).Radius, shapeB.(*shape.Convex))
	case kindA == shape.KindConvex && kindB == shape.KindSphere:
		return flip(sphereConvex(bodyB, bodyA, &tB, &tA, shapeB.(*shape.Sphere).Radius, shapeA.(*shape.Convex)))

	case kindA == shape.KindParticle && kindB == shape.KindConvex:
		return particleConvex(bodyA, bodyB, &tA, &tB, shapeB.(*shape.Convex))
	case kindA == shape.KindConvex && kindB == shape.KindParticle:
		return flip(particleConvex(bodyB, bodyA, &tB, &tA, shapeA.(*shape.Convex)))

	case kindA == shape.KindParticle && kindB == shape.KindParticle:
		return nil

	case kindA == shape.KindConvex && kindB == shape.KindConvex:
		return convexConvex(bodyA, bodyB, &tA, &tB, shapeA.(*shape.Convex), shapeB.(*shape.Convex))
	}
	return nil
}

// flip reverses every contact's normal and A/B roles, used when a
// dispatch routes through the kernel with its natural argument order
// swapped relative to the caller's (bodyA, bodyB).
func flip(contacts []Contact) []Contact {

	for i := range contacts {
		contacts[i].BodyA, contacts[i].BodyB = contacts[i].BodyB, contacts[i].BodyA
		contacts[i].Pi, contacts[i].Pj = contacts[i].Pj, contacts[i].Pi
		contacts[i].Ni.Negate()
	}
	return contacts
}

// planeLocalZ is every Plane shape's local-frame normal.
var planeLocalZ = vecmath.Vector3{X: 0, Y: 0, Z: 1}

// planeSphere handles Plane-Sphere (and, with r=0, Plane-Particle).
func planeSphere(planeBody, sphereBody *body.Body, tPlane, tSphere *vecmath.Transform3d, r float32) []Contact {

	n := tPlane.DirectionPlaceIn(&planeLocalZ)
	center := tSphere.Position

	var scaledN vecmath.Vector3 = n
	scaledN.MultiplyScalar(r)
	var v vecmath.Vector3
	v.SubVectors(&center, &scaledN)

	var rel vecmath.Vector3
	rel.SubVectors(&v, &tPlane.Position)
	d := n.Dot(&rel)
	if d > 0 {
		return nil
	}

	var pi vecmath.Vector3 = n
	pi.MultiplyScalar(-d)
	pi.Add(&v)

	return []Contact{{
		BodyA: planeBody,
		BodyB: sphereBody,
		Ni:    n,
		Pi:    pi,
		Pj:    v,
		Depth: -d,
	}}
}

// planeConvex handles Plane-Convex: every world vertex of the convex
// below the plane becomes its own contact.
func planeConvex(planeBody, convexBody *body.Body, tPlane, tConvex *vecmath.Transform3d, hull *shape.Convex) []Contact {

	worldNormal := tPlane.DirectionPlaceIn(&planeLocalZ)

	var out []Contact
	for _, worldVertex := range hull.WorldVertices(tConvex) {
		var relpos vecmath.Vector3
		relpos.SubVectors(&worldVertex, &tPlane.Position)
		d := worldNormal.Dot(&relpos)
		if d > 0 {
			continue
		}
		var pi vecmath.Vector3 = worldNormal
		pi.MultiplyScalar(-d)
		pi.Add(&worldVertex)

		out = append(out, Contact{
			BodyA: planeBody,
			BodyB: convexBody,
			Ni:    worldNormal,
			Pi:    pi,
			Pj:    worldVertex,
			Depth: -d,
		})
	}
	return out
}

// sphereSphere handles Sphere-Sphere (and, with either radius 0,
// Sphere-Particle).
func sphereSphere(bodyA, bodyB *body.Body, tA, tB *vecmath.Transform3d, rA, rB float32) []Contact {

	var delta vecmath.Vector3
	delta.SubVectors(&tB.Position, &tA.Position)
	dist := delta.Length()
	d := dist - rA - rB
	if d > 0 {
		return nil
	}

	var n vecmath.Vector3
	if dist > 1e-8 {
		n = delta
		n.MultiplyScalar(1 / dist)
	} else {
		n = vecmath.Vector3{X: 0, Y: 0, Z: 1}
	}

	var pi vecmath.Vector3 = n
	pi.MultiplyScalar(rA - d)
	pi.Add(&tA.Position)

	var pj vecmath.Vector3 = n
	pj.MultiplyScalar(-rB)
	pj.Add(&tB.Position)

	return []Contact{{
		BodyA: bodyA,
		BodyB: bodyB,
		Ni:    n,
		Pi:    pi,
		Pj:    pj,
		Depth: -d,
	}}
}

// particleConvex handles Particle-Convex: the particle must lie inside
// every face plane of the hull; the contact uses the shallowest
// (closest) face.
func particleConvex(particleBody, convexBody *body.Body, tParticle, tConvex *vecmath.Transform3d, hull *shape.Convex) []Contact {

	particle := tParticle.Position
	normals := hull.WorldFaceNormals(tConvex)

	bestDepth := vecmath.Inf(1)
	bestIdx := -1
	for i, n := range normals {
		faceVerts := hull.WorldFaceVertices(tConvex, i)
		var rel vecmath.Vector3
		rel.SubVectors(&faceVerts[0], &particle)
		d := n.Dot(&rel)
		if d < 0 {
			return nil
		}
		if d < bestDepth {
			bestDepth = d
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return nil
	}

	n := normals[bestIdx]
	var negN vecmath.Vector3 = n
	negN.Negate()

	var pj vecmath.Vector3 = n
	pj.MultiplyScalar(bestDepth)
	pj.Add(&particle)

	return []Contact{{
		BodyA: particleBody,
		BodyB: convexBody,
		Ni:    negN,
		Pi:    particle,
		Pj:    pj,
		Depth: bestDepth,
	}}
}
