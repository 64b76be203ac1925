// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "github.com/cpmech/gosl/la"

// ShapeHex evaluates the n Lagrange values of a tensor-product hex at
// (r,s,t), writing them in external (gmsh) node order. n must be a
// perfect cube (p+1)^3, or 20 for the serendipity exception (handled in
// hex20.go), or ShapeOrderMismatch is returned.
func ShapeHex(r, s, t float64, n int) (S []float64, err error) {
	if n == 20 {
		return shapeHex20(r, s, t), nil
	}
	p1, ok := resolveOrder(n, 3)
	if !ok {
		return nil, &ShapeOrderMismatch{NNodes: n, NDims: 3}
	}
	Lr := ShapeLine(r, p1)
	Ls := ShapeLine(s, p1)
	Lt := ShapeLine(t, p1)
	ext := GmshToStructuredHex(n)
	S = make([]float64, n)
	for pos, structIdx := range ext {
		i := structIdx % p1
		j := (structIdx / p1) % p1
		k := structIdx / (p1 * p1)
		S[pos] = Lr[i] * Ls[j] * Lt[k]
	}
	return
}

// DShapeHex evaluates the derivatives [n][3] of the tensor-product hex
// basis at (r,s,t), in external node order.
func DShapeHex(r, s, t float64, n int) (dS [][]float64, err error) {
	if n == 20 {
		return dshapeHex20(r, s, t), nil
	}
	p1, ok := resolveOrder(n, 3)
	if !ok {
		return nil, &ShapeOrderMismatch{NNodes: n, NDims: 3}
	}
	Lr := ShapeLine(r, p1)
	Ls := ShapeLine(s, p1)
	Lt := ShapeLine(t, p1)
	dLr := DShapeLine(r, p1)
	dLs := DShapeLine(s, p1)
	dLt := DShapeLine(t, p1)
	ext := GmshToStructuredHex(n)
	dS = la.MatAlloc(n, 3)
	for pos, structIdx := range ext {
		i := structIdx % p1
		j := (structIdx / p1) % p1
		k := structIdx / (p1 * p1)
		dS[pos][0] = dLr[i] * Ls[j] * Lt[k]
		dS[pos][1] = Lr[i] * dLs[j] * Lt[k]
		dS[pos][2] = Lr[i] * Ls[j] * dLt[k]
	}
	return
}
