// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/shape"
	"github.com/tormund/rigid3d/vecmath"
)

// sphereConvex finds the feature of hull closest to the sphere center —
// face, edge or vertex, tried in that priority order — and emits at
// most one contact.
func sphereConvex(sphereBody, convexBody *body.Body, tSphere, tConvex *vecmath.Transform3d, radius float32, hull *shape.Convex) []Contact {

	center := tSphere.Position
	normals := hull.WorldFaceNormals(tConvex)

	for fi, n := range normals {
		faceVerts := hull.WorldFaceVertices(tConvex, fi)

		var rel vecmath.Vector3
		rel.SubVectors(&center, &faceVerts[0])
		planeDist := n.Dot(&rel)
		if planeDist <= 0 || planeDist >= radius {
			continue
		}
		if pointInsideFacePolygon(center, faceVerts, n) {
			var negN vecmath.Vector3 = n
			negN.Negate()

			var pj vecmath.Vector3 = n
			pj.MultiplyScalar(-planeDist)
			pj.Add(&center)

			var pi vecmath.Vector3 = n
			pi.MultiplyScalar(-radius)
			pi.Add(&center)

			return []Contact{{
				BodyA: sphereBody,
				BodyB: convexBody,
				Ni:    negN,
				Pi:    pi,
				Pj:    pj,
				Depth: radius - planeDist,
			}}
		}
	}

	bestEdgeDistSq := radius * radius
	var bestEdgePoint vecmath.Vector3
	haveEdge := false

	for fi := range hull.Faces {
		verts := hull.WorldFaceVertices(tConvex, fi)
		n := len(verts)
		for i := 0; i < n; i++ {
			a := verts[i]
			b := verts[(i+1)%n]
			var edge vecmath.Vector3
			edge.SubVectors(&b, &a)
			lenSq := edge.LengthSq()
			if lenSq < 1e-12 {
				continue
			}
			var toCenter vecmath.Vector3
			toCenter.SubVectors(&center, &a)
			t := vecmath.Clamp(toCenter.Dot(&edge)/lenSq, 0, 1)

			closest := edge
			closest.MultiplyScalar(t)
			closest.Add(&a)

			var diff vecmath.Vector3
			diff.SubVectors(&center, &closest)
			distSq := diff.LengthSq()
			if distSq < bestEdgeDistSq {
				bestEdgeDistSq = distSq
				bestEdgePoint = closest
				haveEdge = true
			}
		}
	}
	if haveEdge {
		var n vecmath.Vector3
		n.SubVectors(&center, &bestEdgePoint)
		dist := n.Length()
		if dist > 1e-8 {
			n.MultiplyScalar(1 / dist)
		} else {
			n = vecmath.Vector3{X: 0, Y: 0, Z: 1}
		}
		var negN vecmath.Vector3 = n
		negN.Negate()

		var pi vecmath.Vector3 = n
		pi.MultiplyScalar(-radius)
		pi.Add(&center)

		return []Contact{{
			BodyA: sphereBody,
			BodyB: convexBody,
			Ni:    negN,
			Pi:    pi,
			Pj:    bestEdgePoint,
			Depth: radius - dist,
		}}
	}

	bestVertDistSq := radius * radius
	var bestVert vecmath.Vector3
	haveVert := false
	for _, v := range hull.WorldVertices(tConvex) {
		var diff vecmath.Vector3
		diff.SubVectors(&center, &v)
		distSq := diff.LengthSq()
		if distSq < bestVertDistSq {
			bestVertDistSq = distSq
			bestVert = v
			haveVert = true
		}
	}
	if !haveVert {
		return nil
	}

	var n vecmath.Vector3
	n.SubVectors(&center, &bestVert)
	dist := n.Length()
	if dist > 1e-8 {
		n.MultiplyScalar(1 / dist)
	} else {
		n = vecmath.Vector3{X: 0, Y: 0, Z: 1}
	}
	var negN vecmath.Vector3 = n
	negN.Negate()

	var pi vecmath.Vector3 = n
	pi.MultiplyScalar(-radius)
	pi.Add(&center)

	return []Contact{{
		BodyA: sphereBody,
		BodyB: convexBody,
		Ni:    negN,
		Pi:    pi,
		Pj:    bestVert,
		Depth: radius - dist,
	}}
}

// pointInsideFacePolygon tests whether p's projection onto the face
// plane lies inside the (convex, CCW) polygon faceVerts whose plane
// normal is n, via the consistent-sign edge-cross test.
func pointInsideFacePolygon(p vecmath.Vector3, faceVerts []vecmath.Vector3, n vecmath.Vector3) bool {

	count := len(faceVerts)
	for i := 0; i < count; i++ {
		a := faceVerts[i]
		b := faceVerts[(i+1)%count]

		var edge, toPoint, cross vecmath.Vector3
		edge.SubVectors(&b, &a)
		toPoint.SubVectors(&p, &a)
		cross.CrossVectors(&edge, &toPoint)
		if cross.Dot(&n) < 0 {
			return false
		}
	}
	return true
}
