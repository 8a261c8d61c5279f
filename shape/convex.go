// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/tormund/rigid3d/vecmath"

// EpsParallel is the dot/cross tolerance used to collapse (anti)parallel
// face normals and edge directions when building UniqueNormals/UniqueEdges.
const EpsParallel float32 = 1e-4

// Face is one planar CCW face of a Convex, referencing vertices by index
// into the owning Convex's Vertices slice.
type Face struct {
	Vertices      []int            // indices into Convex.Vertices, CCW order
	Normal        vecmath.Vector3  // local-frame outward normal
	AdjacentFaces []int            // indices of faces sharing >=1 vertex
}

// Convex is an immutable convex polyhedron defined by a vertex list and a
// set of planar CCW faces. It carries the precomputed adjacency and
// deduplicated normal/edge sets the SAT narrow-phase kernel needs, so
// that per-pair collision queries never recompute them.
type Convex struct {
	Vertices      []vecmath.Vector3
	Faces         []Face
	UniqueNormals []vecmath.Vector3
	UniqueEdges   []vecmath.Vector3
	Position      vecmath.Vector3 // local-frame centroid, used for SAT sign checks
}

// NewConvexFromFaces builds a Convex from a vertex list and, for each
// face, the CCW list of vertex indices forming it. Every face must have
// at least 3 non-colinear vertices; degenerate faces are rejected with
// ErrDegenerateFace rather than panicking, per the engine's construction
// error policy.
func NewConvexFromFaces(vertices []vecmath.Vector3, faceIndexLists [][]int) (*Convex, error) {

	c := &Convex{
		Vertices: append([]vecmath.Vector3(nil), vertices...),
	}

	for _, indices := range faceIndexLists {
		if len(indices) < 3 {
			return nil, ErrDegenerateFace
		}
		v0 := c.Vertices[indices[0]]
		v1 := c.Vertices[indices[1]]
		v2 := c.Vertices[indices[2]]

		var e1, e2, normal vecmath.Vector3
		e1.SubVectors(&v1, &v0)
		e2.SubVectors(&v2, &v0)
		normal.CrossVectors(&e1, &e2)
		if normal.LengthSq() < 1e-12 {
			return nil, ErrDegenerateFace
		}
		normal.Normalize()

		c.Faces = append(c.Faces, Face{
			Vertices: append([]int(nil), indices...),
			Normal:   normal,
		})
	}

	c.computeAdjacency()
	c.computeUniqueNormals()
	c.computeUniqueEdges()
	c.computeCentroid()
	return c, nil
}

// NewBoxHull returns the canonical 8-vertex, 6-face convex hull of a box
// with the given half-extents. Adjacency comes from the shared-vertex
// pass of NewConvexFromFaces, which makes every face adjacent to the 4
// faces not parallel to it.
func NewBoxHull(halfExtents vecmath.Vector3) *Convex {

	hx, hy, hz := halfExtents.X, halfExtents.Y, halfExtents.Z
	verts := []vecmath.Vector3{
		{X: -hx, Y: -hy, Z: -hz}, // 0
		{X: hx, Y: -hy, Z: -hz},  // 1
		{X: hx, Y: hy, Z: -hz},   // 2
		{X: -hx, Y: hy, Z: -hz},  // 3
		{X: -hx, Y: -hy, Z: hz},  // 4
		{X: hx, Y: -hy, Z: hz},   // 5
		{X: hx, Y: hy, Z: hz},    // 6
		{X: -hx, Y: hy, Z: hz},   // 7
	}
	faces := [][]int{
		{4, 5, 6, 7}, // +Z
		{3, 2, 1, 0}, // -Z
		{5, 1, 2, 6}, // +X
		{0, 4, 7, 3}, // -X
		{7, 6, 2, 3}, // +Y
		{0, 1, 5, 4}, // -Y
	}
	c, err := NewConvexFromFaces(verts, faces)
	if err != nil {
		// The 8 canonical box vertices never produce a degenerate face;
		// this would indicate a bug in the literal table above.
		panic("shape: canonical box hull is degenerate: " + err.Error())
	}
	return c
}

func (c *Convex) computeAdjacency() {

	for i := range c.Faces {
		seen := map[int]bool{i: true}
		for j := range c.Faces {
			if i == j {
				continue
			}
			if facesShareVertex(c.Faces[i], c.Faces[j]) && !seen[j] {
				c.Faces[i].AdjacentFaces = append(c.Faces[i].AdjacentFaces, j)
				seen[j] = true
			}
		}
	}
}

func facesShareVertex(a, b Face) bool {

	for _, ia := range a.Vertices {
		for _, ib := range b.Vertices {
			if ia == ib {
				return true
			}
		}
	}
	return false
}

func (c *Convex) computeUniqueNormals() {

	for _, f := range c.Faces {
		c.UniqueNormals = appendUniqueDirection(c.UniqueNormals, f.Normal)
	}
}

func (c *Convex) computeUniqueEdges() {

	for _, f := range c.Faces {
		n := len(f.Vertices)
		for i := 0; i < n; i++ {
			a := c.Vertices[f.Vertices[i]]
			b := c.Vertices[f.Vertices[(i+1)%n]]
			var edge vecmath.Vector3
			edge.SubVectors(&b, &a)
			if edge.LengthSq() < 1e-12 {
				continue
			}
			edge.Normalize()
			c.UniqueEdges = appendUniqueDirection(c.UniqueEdges, edge)
		}
	}
}

// appendUniqueDirection adds dir to dirs unless a direction already present
// is within EpsParallel of dir or of -dir (dedup rule shared by
// UniqueNormals and UniqueEdges, §4.2 steps 3-4).
func appendUniqueDirection(dirs []vecmath.Vector3, dir vecmath.Vector3) []vecmath.Vector3 {

	for _, d := range dirs {
		if d.AlmostEquals(&dir, EpsParallel) {
			return dirs
		}
		neg := dir
		neg.Negate()
		if d.AlmostEquals(&neg, EpsParallel) {
			return dirs
		}
	}
	return append(dirs, dir)
}

func (c *Convex) computeCentroid() {

	var sum vecmath.Vector3
	for _, v := range c.Vertices {
		sum.Add(&v)
	}
	if len(c.Vertices) > 0 {
		sum.MultiplyScalar(1 / float32(len(c.Vertices)))
	}
	c.Position = sum
}

// Kind implements Shape.
func (c *Convex) Kind() Kind { return KindConvex }

// BoundingBox implements Shape: the local-frame AABB of the vertex set.
func (c *Convex) BoundingBox() vecmath.Box3 {

	var box vecmath.Box3
	box.MakeEmpty()
	for i := range c.Vertices {
		box.ExpandByPoint(&c.Vertices[i])
	}
	return box
}

// BoundingSphereRadius implements Shape: the farthest vertex from the
// shape's local origin (not its centroid — Body positions shapes relative
// to the body origin, and the bounding sphere must bound the shape as
// seen from there).
func (c *Convex) BoundingSphereRadius() float32 {

	var maxSq float32
	for i := range c.Vertices {
		d := c.Vertices[i].LengthSq()
		if d > maxSq {
			maxSq = d
		}
	}
	return vecmath.Sqrt(maxSq)
}

// Volume implements Shape via tetrahedron decomposition from the centroid
// to each face triangle (fan-triangulated), the signed-volume divergence
// theorem sum.
func (c *Convex) Volume() float32 {

	var vol float32
	for _, f := range c.Faces {
		n := len(f.Vertices)
		v0 := c.Vertices[f.Vertices[0]]
		for i := 1; i < n-1; i++ {
			v1 := c.Vertices[f.Vertices[i]]
			v2 := c.Vertices[f.Vertices[i+1]]
			var a, b vecmath.Vector3
			a.SubVectors(&v1, &c.Position)
			b.SubVectors(&v2, &c.Position)
			var cross vecmath.Vector3
			cross.CrossVectors(&a, &b)
			var c0 vecmath.Vector3
			c0.SubVectors(&v0, &c.Position)
			vol += vecmath.Abs(c0.Dot(&cross)) / 6
		}
	}
	return vol
}

// RotationalInertia implements Shape using the AABB box-equivalent
// cuboid-inertia approximation: a deliberate simplification (ported
// verbatim from the corpus's geometry.RotationalInertia) rather than
// exact polyhedral inertia, left unresolved for general hulls.
func (c *Convex) RotationalInertia(mass float32) vecmath.Matrix3 {

	box := c.BoundingBox()
	size := box.Size()
	x := (size.Y*size.Y + size.Z*size.Z) * mass / 12
	y := (size.X*size.X + size.Z*size.Z) * mass / 12
	z := (size.X*size.X + size.Y*size.Y) * mass / 12
	return *vecmath.NewDiagonalMatrix3(x, y, z)
}

// WorldVertices returns every vertex transformed into world space by the
// given shape-instance transform.
func (c *Convex) WorldVertices(t *vecmath.Transform3d) []vecmath.Vector3 {

	out := make([]vecmath.Vector3, len(c.Vertices))
	for i := range c.Vertices {
		out[i] = t.PointPlaceIn(&c.Vertices[i])
	}
	return out
}

// WorldFaceNormals returns every face normal rotated into world space by
// the given shape-instance transform (no translation).
func (c *Convex) WorldFaceNormals(t *vecmath.Transform3d) []vecmath.Vector3 {

	out := make([]vecmath.Vector3, len(c.Faces))
	for i := range c.Faces {
		out[i] = t.DirectionPlaceIn(&c.Faces[i].Normal)
	}
	return out
}

// WorldUniqueEdges returns every unique edge direction rotated into world
// space by the given shape-instance transform.
func (c *Convex) WorldUniqueEdges(t *vecmath.Transform3d) []vecmath.Vector3 {

	out := make([]vecmath.Vector3, len(c.UniqueEdges))
	for i := range c.UniqueEdges {
		out[i] = t.DirectionPlaceIn(&c.UniqueEdges[i])
	}
	return out
}

// ProjectOntoWorldAxis returns the (min, max) scalar projection of every
// world-space vertex of this hull onto axis (which must be normalized).
// Initializing min/max to +-Inf (rather than the zero value the corpus's
// geometry.ProjectOntoAxis used) is required for correctness when every
// projection lands on one side of the origin.
func (c *Convex) ProjectOntoWorldAxis(t *vecmath.Transform3d, axis *vecmath.Vector3) (min, max float32) {

	min, max = vecmath.Inf(1), vecmath.Inf(-1)
	for i := range c.Vertices {
		wv := t.PointPlaceIn(&c.Vertices[i])
		d := wv.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// WorldFaceVertices returns the world-space vertices of face index i.
func (c *Convex) WorldFaceVertices(t *vecmath.Transform3d, faceIndex int) []vecmath.Vector3 {

	f := c.Faces[faceIndex]
	out := make([]vecmath.Vector3, len(f.Vertices))
	for i, vi := range f.Vertices {
		out[i] = t.PointPlaceIn(&c.Vertices[vi])
	}
	return out
}

// TestSepAxis projects both hulls onto axis and returns the overlap
// depth of the two projection intervals along with whether the axis
// currently separates the two hulls (depth is 0 when it does).
func TestSepAxis(hullA *Convex, tA *vecmath.Transform3d, hullB *Convex, tB *vecmath.Transform3d, axis *vecmath.Vector3) (depth float32, separated bool) {

	minA, maxA := hullA.ProjectOntoWorldAxis(tA, axis)
	minB, maxB := hullB.ProjectOntoWorldAxis(tB, axis)
	if maxA < minB || maxB < minA {
		return 0, true
	}
	d1 := maxA - minB
	d2 := maxB - minA
	if d1 < d2 {
		return d1, false
	}
	return d2, false
}

// FindPenetrationAxis runs the Separating Axis Theorem over hullA's face
// normals, hullB's face normals, and every cross-product pair of their
// unique edges, returning the axis of least penetration and its depth.
// ok is false when a separating axis was found (the hulls do not
// overlap). Grounded on the corpus's convexhull.go findSeparatingAxis,
// fixed to read hullB's own world face normals on the second pass rather
// than hullA's a second time.
func FindPenetrationAxis(hullA *Convex, tA *vecmath.Transform3d, hullB *Convex, tB *vecmath.Transform3d) (axis vecmath.Vector3, depth float32, ok bool) {

	minDepth := vecmath.Inf(1)
	found := false

	test := func(candidate vecmath.Vector3) bool {
		if candidate.LengthSq() < 1e-12 {
			return true
		}
		candidate.Normalize()
		d, separated := TestSepAxis(hullA, tA, hullB, tB, &candidate)
		if separated {
			return false
		}
		if d < minDepth {
			minDepth = d
			axis = candidate
			found = true
		}
		return true
	}

	for _, n := range hullA.WorldFaceNormals(tA) {
		if !test(n) {
			return vecmath.Vector3{}, 0, false
		}
	}
	for _, n := range hullB.WorldFaceNormals(tB) {
		if !test(n) {
			return vecmath.Vector3{}, 0, false
		}
	}
	for _, ea := range hullA.WorldUniqueEdges(tA) {
		for _, eb := range hullB.WorldUniqueEdges(tB) {
			var cross vecmath.Vector3
			cross.CrossVectors(&ea, &eb)
			if !test(cross) {
				return vecmath.Vector3{}, 0, false
			}
		}
	}

	if !found {
		return vecmath.Vector3{}, 0, false
	}

	// Orient the axis to point from A's centroid towards B's, so callers
	// can treat it as "the direction to push B to resolve penetration".
	centroidA := tA.PointPlaceIn(&hullA.Position)
	centroidB := tB.PointPlaceIn(&hullB.Position)
	var d vecmath.Vector3
	d.SubVectors(&centroidB, &centroidA)
	if d.Dot(&axis) < 0 {
		axis.Negate()
	}
	return axis, minDepth, true
}

// referenceFaceIndex returns the index of the face of hull (in world
// space) whose normal most nearly opposes axis — the "reference face"
// used as the clip target in Sutherland-Hodgman clipping.
func referenceFaceIndex(hull *Convex, t *vecmath.Transform3d, axis *vecmath.Vector3) int {

	best := 0
	bestDot := vecmath.Inf(1)
	for i, n := range hull.WorldFaceNormals(t) {
		d := n.Dot(axis)
		if d < bestDot {
			bestDot = d
			best = i
		}
	}
	return best
}

// ClippedPoint is one surviving vertex of Sutherland-Hodgman clipping,
// carrying its penetration depth against the reference face.
type ClippedPoint struct {
	Point vecmath.Vector3
	Depth float32
}

// ClipAgainstHull clips the incident face of hullB (the face whose
// normal most opposes axis) against the side planes of hullA's
// reference face (the face whose normal is most anti-parallel to axis),
// then measures each surviving point's depth below the reference face.
// This is the Sutherland-Hodgman polygon clip the contact-manifold
// construction for Convex-Convex pairs relies on.
func ClipAgainstHull(hullA *Convex, tA *vecmath.Transform3d, hullB *Convex, tB *vecmath.Transform3d, axis *vecmath.Vector3) []ClippedPoint {

	refIdx := referenceFaceIndex(hullA, tA, axis)
	refNormal := hullA.WorldFaceNormals(tA)[refIdx]
	refVerts := hullA.WorldFaceVertices(tA, refIdx)
	refPoint := refVerts[0]

	var negAxis vecmath.Vector3 = refNormal
	negAxis.Negate()
	incIdx := referenceFaceIndex(hullB, tB, &negAxis)
	polygon := hullB.WorldFaceVertices(tB, incIdx)

	refFace := hullA.Faces[refIdx]
	n := len(refFace.Vertices)
	for i := 0; i < n; i++ {
		a := refVerts[i]
		b := refVerts[(i+1)%n]

		var edge, sideNormal vecmath.Vector3
		edge.SubVectors(&b, &a)
		sideNormal.CrossVectors(&edge, &refNormal)

		polygon = clipPolygonAgainstPlane(polygon, a, sideNormal)
		if len(polygon) == 0 {
			break
		}
	}

	out := make([]ClippedPoint, 0, len(polygon))
	for _, p := range polygon {
		var toP vecmath.Vector3
		toP.SubVectors(&p, &refPoint)
		depth := -toP.Dot(&refNormal)
		if depth >= 0 {
			out = append(out, ClippedPoint{Point: p, Depth: depth})
		}
	}
	return out
}

// clipPolygonAgainstPlane keeps the portion of polygon on the side of the
// plane (through planePoint, normal planeNormal) that planeNormal points
// away from, inserting an intersection vertex at every edge crossing.
func clipPolygonAgainstPlane(polygon []vecmath.Vector3, planePoint, planeNormal vecmath.Vector3) []vecmath.Vector3 {

	if len(polygon) == 0 {
		return polygon
	}
	var out []vecmath.Vector3
	n := len(polygon)
	for i := 0; i < n; i++ {
		cur := polygon[i]
		next := polygon[(i+1)%n]

		var toCur, toNext vecmath.Vector3
		toCur.SubVectors(&cur, &planePoint)
		toNext.SubVectors(&next, &planePoint)
		curInside := toCur.Dot(&planeNormal) <= 0
		nextInside := toNext.Dot(&planeNormal) <= 0

		if curInside {
			out = append(out, cur)
		}
		if curInside != nextInside {
			denom := toNext.Dot(&planeNormal) - toCur.Dot(&planeNormal)
			if vecmath.Abs(denom) > 1e-12 {
				t := -toCur.Dot(&planeNormal) / denom
				var edge, isect vecmath.Vector3
				edge.SubVectors(&next, &cur)
				isect = cur
				edge.MultiplyScalar(t)
				isect.Add(&edge)
				out = append(out, isect)
			}
		}
	}
	return out
}
