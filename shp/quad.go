// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "github.com/cpmech/gosl/la"

// ShapeQuad evaluates the n Lagrange values of a tensor-product quad at
// (r,s), writing them in external (gmsh) node order. n must be a perfect
// square (p+1)^2, or 8 for the serendipity exception (handled in
// quad8.go), or ShapeOrderMismatch is returned.
func ShapeQuad(r, s float64, n int) (S []float64, err error) {
	if n == 8 {
		return shapeQuad8(r, s), nil
	}
	p1, ok := resolveOrder(n, 2)
	if !ok {
		return nil, &ShapeOrderMismatch{NNodes: n, NDims: 2}
	}
	Lr := ShapeLine(r, p1)
	Ls := ShapeLine(s, p1)
	ext := GmshToStructuredQuad(n)
	S = make([]float64, n)
	for pos, structIdx := range ext {
		i := structIdx % p1
		j := structIdx / p1
		S[pos] = Lr[i] * Ls[j]
	}
	return
}

// DShapeQuad evaluates the derivatives [n][2] of the tensor-product quad
// basis at (r,s), in external node order.
func DShapeQuad(r, s float64, n int) (dS [][]float64, err error) {
	if n == 8 {
		return dshapeQuad8(r, s), nil
	}
	p1, ok := resolveOrder(n, 2)
	if !ok {
		return nil, &ShapeOrderMismatch{NNodes: n, NDims: 2}
	}
	Lr := ShapeLine(r, p1)
	Ls := ShapeLine(s, p1)
	dLr := DShapeLine(r, p1)
	dLs := DShapeLine(s, p1)
	ext := GmshToStructuredQuad(n)
	dS = la.MatAlloc(n, 2)
	for pos, structIdx := range ext {
		i := structIdx % p1
		j := structIdx / p1
		dS[pos][0] = dLr[i] * Ls[j]
		dS[pos][1] = Lr[i] * dLs[j]
	}
	return
}
