// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrNotFitted is returned by TransformCDF and TransformPDF when the
// Mapper has not been fitted.
var ErrNotFitted = errors.New("pit: mapper is not fitted")

// A ShapeError reports sample arrays whose lengths do not match.
type ShapeError struct {
	XLen, YLen int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("pit: sample length mismatch: len(xs) == %d, len(ys) == %d", e.XLen, e.YLen)
}

// normTol is the absolute tolerance within which the final value of a
// fitted CDF counts as already normalized.
const normTol = 1e-8

// A Mapper is an inverse probability integral transform of one
// one-dimensional distribution onto another. It is fitted to a
// fiducial distribution, given either as a sampled CDF or a sampled
// PDF, and afterward maps any test distribution into the fiducial
// distribution's coordinate frame: a test CDF value c is sent to the
// x at which the fiducial CDF reaches c.
//
// The zero value of Mapper is unfitted; transforming with it returns
// ErrNotFitted. Refitting replaces the stored mapping wholesale, and a
// fit that fails leaves any previous mapping in place. A Mapper has no
// internal synchronization: callers that share one instance across
// goroutines must serialize access themselves.
type Mapper struct {
	cdfMap *interp1D
}

// FitFromCDF fits the transform to a fiducial distribution given its
// sampled CDF. xs holds the domain points and cdf the CDF values at
// each of them. If the final CDF value is not within 1e-8 of 1, the
// whole array is rescaled by its final value; a CDF that already ends
// at 1 is used as given.
//
// The fitted mapping inverts the CDF using the given interpolation
// kind. Transforming a CDF value outside the fitted range does not
// clamp or fail: it extrapolates linearly from the outermost pair of
// samples, whatever the kind.
//
// A CDF whose values decrease, or whose final value is not positive,
// is rejected with an error and the previous mapping is kept.
func (m *Mapper) FitFromCDF(xs, cdf []float64, kind InterpKind) error {
	if err := checkShape(xs, cdf); err != nil {
		return err
	}
	last := cdf[len(cdf)-1]
	if !(last > 0) {
		return fmt.Errorf("pit: CDF must end at a positive value, got %v", last)
	}
	if math.Abs(last-1) > normTol {
		cdf = floats.ScaleTo(make([]float64, len(cdf)), 1/last, cdf)
	}
	f, err := fitInterp(cdf, xs, kind)
	if err != nil {
		return err
	}
	m.cdfMap = f
	return nil
}

// FitFromPDF fits the transform to a fiducial distribution given its
// sampled PDF. The CDF is computed from the PDF by cumulative
// trapezoid integration over xs, normalized by its final value, and
// handed to FitFromCDF. A PDF whose integral over xs is not positive
// is rejected with an error.
func (m *Mapper) FitFromPDF(xs, pdf []float64, kind InterpKind) error {
	if err := checkShape(xs, pdf); err != nil {
		return err
	}
	cdf := CumTrapz(pdf, xs)
	total := cdf[len(cdf)-1]
	if !(total > 0) {
		return fmt.Errorf("pit: PDF must have positive total mass, got %v", total)
	}
	floats.Scale(1/total, cdf)
	return m.FitFromCDF(xs, cdf, kind)
}

// TransformCDF maps a test distribution's sampled CDF into the
// fiducial frame. It returns the transformed domain points together
// with the CDF values, which are passed through unchanged: each cdf[i]
// keeps its cumulative probability and moves to the x at which the
// fiducial distribution attains it.
//
// xs holds the points at which cdf was sampled. It is checked against
// cdf for shape but does not otherwise enter the transform; it is kept
// for symmetry with TransformPDF.
func (m *Mapper) TransformCDF(xs, cdf []float64) (newX, outCDF []float64, err error) {
	if err := checkShape(xs, cdf); err != nil {
		return nil, nil, err
	}
	if m.cdfMap == nil {
		return nil, nil, ErrNotFitted
	}
	return m.cdfMap.evalEach(cdf), cdf, nil
}

// TransformPDF maps a test distribution's sampled PDF into the
// fiducial frame. The PDF is integrated to a normalized CDF, the CDF
// is transformed, and the result is differentiated with respect to the
// transformed coordinates to recover a PDF.
//
// Where the fitted mapping is locally flat the transformed coordinates
// repeat and the density there is undefined; the corresponding entries
// of newPDF are NaN.
func (m *Mapper) TransformPDF(xs, pdf []float64) (newX, newPDF []float64, err error) {
	if err := checkShape(xs, pdf); err != nil {
		return nil, nil, err
	}
	if m.cdfMap == nil {
		return nil, nil, ErrNotFitted
	}
	cdf := CumTrapz(pdf, xs)
	floats.Scale(1/cdf[len(cdf)-1], cdf)
	tx, tcdf, err := m.TransformCDF(xs, cdf)
	if err != nil {
		return nil, nil, err
	}
	return tx, Gradient(tcdf, tx), nil
}

func checkShape(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return &ShapeError{len(xs), len(ys)}
	}
	if len(xs) < 2 {
		return fmt.Errorf("pit: need at least two samples, got %d", len(xs))
	}
	return nil
}
