// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refloc implements the reference-coordinate solver: given the
// physical vertices of a curved quad/hex element and a target physical
// point, it finds the element's local reference coordinates by Newton
// iteration over the tensor-product Lagrange shape basis.
//
// The iteration uses a full Newton step clamped to [-1.01,1.01] plus a
// stall-detection early exit, which together stay robust on
// near-singular extruded curvilinear hexes where a plain Newton loop
// oscillates.
package refloc

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/EdinSmartLab/tioga/shp"
)

const (
	iterMax = 20
)

// Solve computes the reference coordinates of target inside the element
// with physical vertices xv[nNodes][nDims] (nDims in {2,3}), by Newton
// iteration with a full step clamped to [-1.01,1.01]. It never fails
// hard: on non-convergence it returns
// the last iterate and inside=false.
func Solve(xv [][]float64, target []float64, nDims, nNodes int) (rst []float64, inside bool) {
	min, max := shp.BoundingBox(xv, nNodes, nDims)
	h := math.Inf(1)
	for i := 0; i < nDims; i++ {
		extent := max[i] - min[i]
		if extent < h {
			h = extent
		}
	}
	tol := 1e-10 * h

	loc := make([]float64, nDims)
	norm := 1.0
	normPrev := 2.0
	iter := 0

	for norm > tol && iter < iterMax {
		var S []float64
		var dS [][]float64
		var err error
		if nDims == 2 {
			S, err = shp.ShapeQuad(loc[0], loc[1], nNodes)
			if err == nil {
				dS, err = shp.DShapeQuad(loc[0], loc[1], nNodes)
			}
		} else {
			S, err = shp.ShapeHex(loc[0], loc[1], loc[2], nNodes)
			if err == nil {
				dS, err = shp.DShapeHex(loc[0], loc[1], loc[2], nNodes)
			}
		}
		if err != nil {
			return loc, false
		}

		// residual dx = target - sum_n S[n]*xv[n]
		dx := make([]float64, nDims)
		for i := 0; i < nDims; i++ {
			dx[i] = target[i]
			for n := 0; n < nNodes; n++ {
				dx[i] -= S[n] * xv[n][i]
			}
		}

		// Jacobian J[i][j] = sum_n xv[n][i]*dS[n][j]
		J := la.MatAlloc(nDims, nDims)
		for n := 0; n < nNodes; n++ {
			for i := 0; i < nDims; i++ {
				for j := 0; j < nDims; j++ {
					J[i][j] += xv[n][i] * dS[n][j]
				}
			}
		}

		var detJ float64
		var adj [][]float64
		if nDims == 2 {
			detJ = shp.Det2(J)
			adj = shp.Adj2(J)
		} else {
			detJ = shp.Det3(J)
			adj = shp.Adj3(J)
		}
		if detJ == 0 {
			return loc, false
		}

		// update: loc += J^-1 * dx = (1/detJ) * adj * dx, clamped
		for i := 0; i < nDims; i++ {
			var delta float64
			for j := 0; j < nDims; j++ {
				delta += adj[i][j] * dx[j]
			}
			loc[i] += delta / detJ
			if loc[i] < -1.01 {
				loc[i] = -1.01
			}
			if loc[i] > 1.01 {
				loc[i] = 1.01
			}
		}

		norm = vecNorm(dx)
		if iter > 1 && norm > 0.99*normPrev {
			break // stalled: protects near-singular curvilinear elements
		}
		normPrev = norm
		iter++
	}

	inside = true
	for i := 0; i < nDims; i++ {
		if math.Abs(loc[i]) > 1+1e-10 {
			inside = false
			break
		}
	}
	return loc, inside
}

func vecNorm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
