// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pit

// CumTrapz returns the cumulative integral of ys with respect to xs,
// computed with the trapezoid rule. The result has the same length as
// ys and its first element is 0.
func CumTrapz(ys, xs []float64) []float64 {
	if len(xs) != len(ys) {
		panic("pit: sample length mismatch")
	}
	out := make([]float64, len(ys))
	for i := 1; i < len(ys); i++ {
		out[i] = out[i-1] + 0.5*(ys[i]+ys[i-1])*(xs[i]-xs[i-1])
	}
	return out
}

// Gradient returns the derivative of ys with respect to xs at every
// sample. Interior points use second-order central differences,
// boundary points second-order one-sided differences; the grid need
// not be uniform. With only two samples the single first-order
// difference is returned for both ends.
//
// Wherever the local spacing of xs is zero or negative the derivative
// is undefined and the corresponding element is NaN.
func Gradient(ys, xs []float64) []float64 {
	if len(xs) != len(ys) {
		panic("pit: sample length mismatch")
	}
	n := len(ys)
	out := make([]float64, n)
	switch n {
	case 0:
		return out
	case 1:
		out[0] = nan
		return out
	case 2:
		d := nan
		if h := xs[1] - xs[0]; h > 0 {
			d = (ys[1] - ys[0]) / h
		}
		out[0], out[1] = d, d
		return out
	}

	for i := 1; i < n-1; i++ {
		h1 := xs[i] - xs[i-1]
		h2 := xs[i+1] - xs[i]
		if h1 <= 0 || h2 <= 0 {
			out[i] = nan
			continue
		}
		out[i] = (h1*h1*ys[i+1] + (h2*h2-h1*h1)*ys[i] - h2*h2*ys[i-1]) / (h1 * h2 * (h1 + h2))
	}

	if h1, h2 := xs[1]-xs[0], xs[2]-xs[1]; h1 <= 0 || h2 <= 0 {
		out[0] = nan
	} else {
		out[0] = (-(2*h1+h2)*ys[0] + (h1+h2)*(h1+h2)/h2*ys[1] - h1*h1/h2*ys[2]) / (h1 * (h1 + h2))
	}
	if h1, h2 := xs[n-2]-xs[n-3], xs[n-1]-xs[n-2]; h1 <= 0 || h2 <= 0 {
		out[n-1] = nan
	} else {
		out[n-1] = (h2*h2/h1*ys[n-3] - (h1+h2)*(h1+h2)/h1*ys[n-2] + (h1+2*h2)*ys[n-1]) / (h2 * (h1 + h2))
	}
	return out
}
