// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package equation implements SPOOK constraint equations — the
// per-degree-of-freedom rows the solver iterates over, each carrying its
// own Jacobian, bias and impulse bounds. Based on Claude Lacoursière's
// "Ghosts and Machines" regularized variational formulation.
package equation

import "github.com/tormund/rigid3d/vecmath"

// JacobianElement is one body's half of an equation's Jacobian row: a
// spatial (linear) part and a rotational part.
type JacobianElement struct {
	Spatial    vecmath.Vector3
	Rotational vecmath.Vector3
}

// MultiplyVectors dots this element's spatial part with linear and its
// rotational part with angular, summing the two — the contraction
// G_i · (v_i, ω_i) this equation's Jacobian performs against a body's
// velocity.
func (je *JacobianElement) MultiplyVectors(linear, angular *vecmath.Vector3) float32 {

	return je.Spatial.Dot(linear) + je.Rotational.Dot(angular)
}
