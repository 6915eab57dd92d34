// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pit

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/integrate"
)

func TestCumTrapz(t *testing.T) {
	xs := linspace(0, 2, 201)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x * x
	}

	got := CumTrapz(ys, xs)
	if len(got) != len(ys) {
		t.Fatalf("want length %d, got %d", len(ys), len(got))
	}
	if got[0] != 0 {
		t.Errorf("want first element 0, got %v", got[0])
	}
	// The final element is the whole-interval trapezoid integral.
	if want := integrate.Trapezoidal(xs, ys); !aeqEps(want, got[len(got)-1], 1e-12) {
		t.Errorf("want total %v, got %v", want, got[len(got)-1])
	}
	// And every prefix approximates the analytic integral x³/3.
	for i, x := range xs {
		if want := x * x * x / 3; !aeqEps(want, got[i], 1e-3) {
			t.Fatalf("at x=%v: want %v, got %v", x, want, got[i])
		}
	}
}

func TestCumTrapzTriangle(t *testing.T) {
	xs := []float64{0, 1, 3}
	ys := []float64{0, 2, 2}
	want := []float64{0, 1, 5}
	got := CumTrapz(ys, xs)
	for i := range want {
		if !aeq(want[i], got[i]) {
			t.Errorf("at %d: want %v, got %v", i, want[i], got[i])
		}
	}
}

func TestGradientQuadratic(t *testing.T) {
	// Second-order differences are exact for quadratics, at the
	// boundaries included, even on a non-uniform grid.
	xs := []float64{0, 0.1, 0.3, 0.35, 0.6, 1.0, 1.5}
	ys := make([]float64, len(xs))
	want := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3*x*x - 2*x + 1
		want[i] = 6*x - 2
	}
	got := Gradient(ys, xs)
	for i := range want {
		if !aeqEps(want[i], got[i], 1e-9) {
			t.Errorf("at x=%v: want %v, got %v", xs[i], want[i], got[i])
		}
	}
}

func TestGradientDuplicateAbscissae(t *testing.T) {
	xs := []float64{0, 1, 2, 2, 3, 4}
	ys := []float64{0, 1, 2, 3, 4, 5}
	got := Gradient(ys, xs)
	for _, i := range []int{2, 3} {
		if !math.IsNaN(got[i]) {
			t.Errorf("at %d: want NaN, got %v", i, got[i])
		}
	}
	for _, i := range []int{0, 1, 4, 5} {
		if math.IsNaN(got[i]) {
			t.Errorf("at %d: want a finite derivative, got NaN", i)
		}
	}
}

func TestGradientTwoPoints(t *testing.T) {
	got := Gradient([]float64{1, 5}, []float64{0, 2})
	if !aeq(2, got[0]) || !aeq(2, got[1]) {
		t.Errorf("want [2 2], got %v", got)
	}
	got = Gradient([]float64{1, 5}, []float64{2, 2})
	if !math.IsNaN(got[0]) || !math.IsNaN(got[1]) {
		t.Errorf("want NaNs for zero spacing, got %v", got)
	}
}
