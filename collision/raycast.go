// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/shape"
	"github.com/tormund/rigid3d/vecmath"
)

// RaycastHit is the closest surface point a Raycaster found along a ray.
// Point and Normal are given in the hit shape's local frame, not world
// space; Distance is the world-space ray parameter.
type RaycastHit struct {
	Body     *body.Body
	Point    vecmath.Vector3
	Normal   vecmath.Vector3
	Distance float32
}

// Raycaster finds the closest body surface a ray intersects.
type Raycaster struct{}

// IntersectWorld returns the closest hit of ray against every shape of
// every body in bodies, or ok=false if the ray hits nothing.
func (r *Raycaster) IntersectWorld(ray *vecmath.Ray, bodies []*body.Body) (RaycastHit, bool) {

	best := RaycastHit{Distance: vecmath.Inf(1)}
	found := false

	for _, b := range bodies {
		for i, inst := range b.Shapes {
			t := b.WorldTransform(i)
			hit, ok := intersectShape(ray, &t, inst.Shape)
			if !ok {
				continue
			}
			hit.Body = b
			if hit.Distance < best.Distance {
				best = hit
				found = true
			}
		}
	}
	return best, found
}

func intersectShape(ray *vecmath.Ray, t *vecmath.Transform3d, s shape.Shape) (RaycastHit, bool) {

	switch sh := s.(type) {
	case *shape.Plane:
		return intersectPlane(ray, t)
	case *shape.Sphere:
		return intersectSphere(ray, t, sh.Radius)
	case *shape.Convex:
		return intersectConvex(ray, t, sh)
	case *shape.Particle:
		return RaycastHit{}, false
	default:
		return RaycastHit{}, false
	}
}

func intersectPlane(ray *vecmath.Ray, t *vecmath.Transform3d) (RaycastHit, bool) {

	n := t.DirectionPlaceIn(&planeLocalZ)
	denom := ray.Direction.Dot(&n)
	if vecmath.Abs(denom) < 1e-8 {
		return RaycastHit{}, false
	}

	var toPlane vecmath.Vector3
	toPlane.SubVectors(&t.Position, &ray.Origin)
	dist := toPlane.Dot(&n) / denom
	if dist < 0 {
		return RaycastHit{}, false
	}

	worldPoint := ray.At(dist)
	return RaycastHit{Point: t.PointRelativeTo(&worldPoint), Normal: t.DirectionRelativeTo(&n), Distance: dist}, true
}

func intersectSphere(ray *vecmath.Ray, t *vecmath.Transform3d, radius float32) (RaycastHit, bool) {

	var oc vecmath.Vector3
	oc.SubVectors(&ray.Origin, &t.Position)

	b := oc.Dot(&ray.Direction)
	c := oc.LengthSq() - radius*radius
	disc := b*b - c
	if disc < 0 {
		return RaycastHit{}, false
	}
	sq := vecmath.Sqrt(disc)

	t0 := -b - sq
	t1 := -b + sq
	var dist float32
	if t0 >= 0 {
		dist = t0
	} else if t1 >= 0 {
		dist = t1
	} else {
		return RaycastHit{}, false
	}

	point := ray.At(dist)
	var n vecmath.Vector3
	n.SubVectors(&point, &t.Position)
	n.Normalize()
	return RaycastHit{Point: t.PointRelativeTo(&point), Normal: t.DirectionRelativeTo(&n), Distance: dist}, true
}

func intersectConvex(ray *vecmath.Ray, t *vecmath.Transform3d, hull *shape.Convex) (RaycastHit, bool) {

	best := RaycastHit{Distance: vecmath.Inf(1)}
	found := false

	normals := hull.WorldFaceNormals(t)
	for fi, n := range normals {
		verts := hull.WorldFaceVertices(t, fi)

		denom := ray.Direction.Dot(&n)
		if vecmath.Abs(denom) < 1e-8 {
			continue
		}
		var toFace vecmath.Vector3
		toFace.SubVectors(&verts[0], &ray.Origin)
		dist := toFace.Dot(&n) / denom
		if dist < 0 || dist >= best.Distance {
			continue
		}

		point := ray.At(dist)
		if !pointInsideFacePolygon(point, verts, n) {
			continue
		}

		faceNormal := n
		if denom > 0 {
			faceNormal.Negate()
		}
		best = RaycastHit{Point: t.PointRelativeTo(&point), Normal: t.DirectionRelativeTo(&faceNormal), Distance: dist}
		found = true
	}
	return best, found
}
