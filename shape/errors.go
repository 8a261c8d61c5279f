// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "errors"

// ErrDegenerateFace is returned by NewConvexFromFaces when a face has
// fewer than 3 vertices or its vertices are colinear, so no valid face
// normal can be computed. The caller gets a typed error instead of a
// panic, per the engine's no-panic-on-runtime-input policy.
var ErrDegenerateFace = errors.New("shape: degenerate convex face")
