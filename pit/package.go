// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pit maps one-dimensional distributions onto a fiducial distribution
// using the inverse probability integral transform.
package pit // import "github.com/calstats/go-invpit/pit"

import "math"

var nan = math.NaN()
