// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import "errors"

// ErrInvalidBody is returned by NewCompound when it is given a Shapes
// list with no entries. No constructor checks the mass value.
var ErrInvalidBody = errors.New("body: invalid body configuration")
