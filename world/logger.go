// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

// Logger is the seam World uses to report conditions that arise
// during a step rather than as returned errors; the one condition
// Simulate reports is solver non-convergence. A *log.Logger from
// the standard library satisfies this trivially; World never reaches
// for a global logger, and logs nothing when Logger is nil.
type Logger interface {
	Printf(format string, v ...interface{})
}
