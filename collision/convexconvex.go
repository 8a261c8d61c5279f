// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import (
	"github.com/tormund/rigid3d/body"
	"github.com/tormund/rigid3d/shape"
	"github.com/tormund/rigid3d/vecmath"
)

// convexConvex runs SAT over hullA/hullB's face normals and edge
// cross-products to find the axis of least penetration, then clips the
// incident face against the reference face to build the contact
// manifold.
func convexConvex(bodyA, bodyB *body.Body, tA, tB *vecmath.Transform3d, hullA, hullB *shape.Convex) []Contact {

	axis, _, ok := shape.FindPenetrationAxis(hullA, tA, hullB, tB)
	if !ok {
		return nil
	}

	clipped := shape.ClipAgainstHull(hullA, tA, hullB, tB, &axis)
	if len(clipped) == 0 {
		return nil
	}

	out := make([]Contact, 0, len(clipped))
	for _, cp := range clipped {
		var pi vecmath.Vector3 = axis
		pi.MultiplyScalar(-cp.Depth)
		pi.Add(&cp.Point)

		out = append(out, Contact{
			BodyA: bodyA,
			BodyB: bodyB,
			Ni:    axis,
			Pi:    pi,
			Pj:    cp.Point,
			Depth: cp.Depth,
		})
	}
	return out
}
