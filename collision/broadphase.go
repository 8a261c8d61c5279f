// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import "github.com/tormund/rigid3d/body"

// Pair is a candidate colliding pair of body indices into the caller's
// body slice, with idA < idB.
type Pair struct {
	A, B int
}

// BroadPhase returns every pair of bodies whose bounding spheres
// overlap, skipping Static-Static pairs and pairs where both bodies are
// asleep. Complexity is O(n²); a spatial index is a permitted but
// unimplemented optimization.
func BroadPhase(bodies []*body.Body) []Pair {

	var pairs []Pair
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			if !body.CollidableWith(a, b) {
				continue
			}
			if a.SleepState == body.Sleeping && b.SleepState == body.Sleeping {
				continue
			}
			if !NeedTest(a, b) {
				continue
			}
			pairs = append(pairs, Pair{A: i, B: j})
		}
	}
	return pairs
}

// NeedTest reports whether a and b's bounding spheres are close enough
// to warrant a narrow-phase test.
func NeedTest(a, b *body.Body) bool {

	var d float32
	dx := a.Frame.Position.X - b.Frame.Position.X
	dy := a.Frame.Position.Y - b.Frame.Position.Y
	dz := a.Frame.Position.Z - b.Frame.Position.Z
	d = dx*dx + dy*dy + dz*dz

	r := a.BoundingSphereRadius + b.BoundingSphereRadius
	return d <= r*r
}
