// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pit

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// InterpKind selects the interpolation scheme used for the fitted
// inverse-CDF mapping.
type InterpKind int

//go:generate stringer -type=InterpKind

const (
	// InterpLinear is piecewise linear interpolation.
	InterpLinear InterpKind = iota

	// InterpNearest is piecewise constant interpolation. The
	// mapping jumps at each sample rather than interpolating
	// between samples.
	InterpNearest

	// InterpCubic is a natural cubic spline.
	InterpCubic

	// InterpAkima is an Akima spline, a cubic that tolerates
	// outliers and flat stretches better than a natural spline.
	InterpAkima
)

func (k InterpKind) predictor() (interp.FittablePredictor, error) {
	switch k {
	case InterpLinear:
		return &interp.PiecewiseLinear{}, nil
	case InterpNearest:
		return &interp.PiecewiseConstant{}, nil
	case InterpCubic:
		return &interp.NaturalCubic{}, nil
	case InterpAkima:
		return &interp.AkimaSpline{}, nil
	}
	return nil, fmt.Errorf("pit: unknown interpolation kind %v", k)
}

// interp1D is a fitted one-dimensional interpolant. Inside the fitted
// range it delegates to a gonum predictor; outside it extrapolates
// linearly from the outermost pair of knots.
type interp1D struct {
	pred     interp.Predictor
	x0, y0   float64
	x1, y1   float64
	dy0, dy1 float64
}

// fitInterp fits an interpolant of the given kind through the points
// (xs[i], ys[i]). Runs of equal xs collapse to their first sample so
// that locally flat input still yields a well-defined interpolant.
func fitInterp(xs, ys []float64, kind InterpKind) (*interp1D, error) {
	pred, err := kind.predictor()
	if err != nil {
		return nil, err
	}
	kx := make([]float64, 0, len(xs))
	ky := make([]float64, 0, len(ys))
	for i, x := range xs {
		if i > 0 && x == kx[len(kx)-1] {
			continue
		}
		kx = append(kx, x)
		ky = append(ky, ys[i])
	}
	if len(kx) < 2 {
		return nil, errors.New("pit: need at least two distinct knots")
	}
	// With duplicates collapsed the knots must be strictly
	// increasing. Fit panics on unordered knots rather than
	// returning an error, so reject them here. The negated
	// comparison also catches NaN.
	for i := 1; i < len(kx); i++ {
		if !(kx[i] > kx[i-1]) {
			return nil, errors.New("pit: CDF values must be non-decreasing")
		}
	}
	if err := pred.Fit(kx, ky); err != nil {
		return nil, err
	}
	n := len(kx)
	return &interp1D{
		pred: pred,
		x0:   kx[0], y0: ky[0],
		x1: kx[n-1], y1: ky[n-1],
		dy0: (ky[1] - ky[0]) / (kx[1] - kx[0]),
		dy1: (ky[n-1] - ky[n-2]) / (kx[n-1] - kx[n-2]),
	}, nil
}

func (f *interp1D) eval(x float64) float64 {
	switch {
	case x < f.x0:
		return f.y0 + f.dy0*(x-f.x0)
	case x > f.x1:
		return f.y1 + f.dy1*(x-f.x1)
	}
	return f.pred.Predict(x)
}

// evalEach returns eval(xs[i]) for each i.
func (f *interp1D) evalEach(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f.eval(x)
	}
	return ys
}
