// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pit

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeqEps(expect, got, eps float64) bool {
	return math.Abs(expect-got) < eps
}

func linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

func cdfEach(d distuv.Normal, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = d.CDF(x)
	}
	return ys
}

func pdfEach(d distuv.Normal, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = d.Prob(x)
	}
	return ys
}
