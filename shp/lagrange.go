// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shp implements the tensor-product Lagrange shape-function
// engine: 1-D basis evaluation, node-ordering maps between the
// structured (i,j,k) layout and the external gmsh-style recursive
// layout, and the quad/hex shape functions (plus the 20-node
// serendipity hex) built on top of them.
package shp

import "github.com/cpmech/gosl/chk"

// UniformNodes1D returns n nodes uniformly spaced on [-1,1].
//  Note: n must be >= 2; callers must not supply a smaller n.
func UniformNodes1D(n int) (x []float64) {
	x = make([]float64, n)
	if n == 1 {
		return
	}
	h := 2.0 / float64(n-1)
	for i := 0; i < n; i++ {
		x[i] = -1.0 + float64(i)*h
	}
	return
}

// LagrangeValue computes L_m(y) = Π_{i≠m} (y-x[i]) / (x[m]-x[i])
// for the 1-D Lagrange basis on node set x, evaluated at y.
func LagrangeValue(x []float64, m int, y float64) (L float64) {
	L = 1.0
	for i := 0; i < len(x); i++ {
		if i == m {
			continue
		}
		L *= (y - x[i]) / (x[m] - x[i])
	}
	return
}

// LagrangeDeriv computes L'_m(y) = Σ_{i≠m} (1/(x[m]-x[i])) · Π_{j≠m,j≠i} (y-x[j])/(x[m]-x[j]).
func LagrangeDeriv(x []float64, m int, y float64) (dL float64) {
	for i := 0; i < len(x); i++ {
		if i == m {
			continue
		}
		term := 1.0 / (x[m] - x[i])
		for j := 0; j < len(x); j++ {
			if j == m || j == i {
				continue
			}
			term *= (y - x[j]) / (x[m] - x[j])
		}
		dL += term
	}
	return
}

// ShapeLine returns the n Lagrange values on the uniform grid of n nodes,
// evaluated at xi, in structured (left-to-right) order.
//  Note: n must be >= 2.
func ShapeLine(xi float64, n int) (S []float64) {
	x := UniformNodes1D(n)
	S = make([]float64, n)
	for m := 0; m < n; m++ {
		S[m] = LagrangeValue(x, m, xi)
	}
	return
}

// DShapeLine returns the n Lagrange derivatives on the uniform grid of n
// nodes, evaluated at xi.
func DShapeLine(xi float64, n int) (dS []float64) {
	x := UniformNodes1D(n)
	dS = make([]float64, n)
	for m := 0; m < n; m++ {
		dS[m] = LagrangeDeriv(x, m, xi)
	}
	return
}

// ShapeOrderMismatch is returned whenever nNodes is not consistent with
// any supported element/polynomial order: (p+1)^d for some integer p, 8
// for the 2-D serendipity quad, or 20 for the 3-D serendipity hex.
type ShapeOrderMismatch struct {
	NNodes int
	NDims  int
}

func (e *ShapeOrderMismatch) Error() string {
	return chk.Err("shp: nNodes=%d is not (p+1)^%d for any integer p (nor 20 in 3-D)\n", e.NNodes, e.NDims).Error()
}

// resolveOrder returns p+1 such that n == (p+1)^d, or ok=false.
func resolveOrder(n, d int) (p1 int, ok bool) {
	if n <= 0 {
		return 0, false
	}
	// integer d-th root search; n is always small (element node counts)
	for p1 = 1; ; p1++ {
		v := 1
		for k := 0; k < d; k++ {
			v *= p1
		}
		if v == n {
			return p1, true
		}
		if v > n {
			return 0, false
		}
	}
}
