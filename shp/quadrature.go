// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// NegativeJacobian is returned by Volume when a quadrature point is
// found with det(J) < 0, indicating a tangled or inverted element.
type NegativeJacobian struct {
	R, S, T float64
	DetJ    float64
}

func (e *NegativeJacobian) Error() string {
	return chk.Err("shp: negative Jacobian det=%g at (r,s,t)=(%g,%g,%g)\n", e.DetJ, e.R, e.S, e.T).Error()
}

// gaussLegendre1D returns the npts-point Gauss-Legendre points and
// weights on [-1,1]. Supports 1, 2 and 3 points, the counts needed by
// the element orders this package handles.
func gaussLegendre1D(npts int) (x, w []float64) {
	switch npts {
	case 1:
		return []float64{0}, []float64{2}
	case 2:
		a := 1.0 / 1.7320508075688772 // 1/sqrt(3)
		return []float64{-a, a}, []float64{1, 1}
	case 3:
		a := 0.7745966692414834 // sqrt(3/5)
		return []float64{-a, 0, a}, []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
	}
	panic("shp: unsupported Gauss-Legendre point count")
}

// Volume computes the volume of a curved hex (nNodes consistent with
// ShapeHex) or quad (area, for nNodes consistent with ShapeQuad in 2-D)
// element with physical vertices xv[nNodes][nDims], by Gauss-Legendre
// quadrature of the Jacobian determinant over the reference cube/square,
// using npts points per direction.
func Volume(xv [][]float64, nNodes, nDims, npts int) (vol float64, err error) {
	gx, gw := gaussLegendre1D(npts)
	if nDims == 2 {
		for i := 0; i < npts; i++ {
			for j := 0; j < npts; j++ {
				r, s := gx[i], gx[j]
				dS, derr := DShapeQuad(r, s, nNodes)
				if derr != nil {
					return 0, derr
				}
				J := jacobian2D(xv, dS, nNodes)
				detJ := Det2(J)
				if detJ < 0 {
					return 0, &NegativeJacobian{R: r, S: s, DetJ: detJ}
				}
				vol += detJ * gw[i] * gw[j]
			}
		}
		return
	}
	for i := 0; i < npts; i++ {
		for j := 0; j < npts; j++ {
			for k := 0; k < npts; k++ {
				r, s, t := gx[i], gx[j], gx[k]
				dS, derr := DShapeHex(r, s, t, nNodes)
				if derr != nil {
					return 0, derr
				}
				J := jacobian3D(xv, dS, nNodes)
				detJ := Det3(J)
				if detJ < 0 {
					return 0, &NegativeJacobian{R: r, S: s, T: t, DetJ: detJ}
				}
				vol += detJ * gw[i] * gw[j] * gw[k]
			}
		}
	}
	return
}

// jacobian3D forms J[i][j] = sum_n xv[n][i] * dS[n][j].
func jacobian3D(xv [][]float64, dS [][]float64, nNodes int) [][]float64 {
	J := la.MatAlloc(3, 3)
	for n := 0; n < nNodes; n++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				J[i][j] += xv[n][i] * dS[n][j]
			}
		}
	}
	return J
}

func jacobian2D(xv [][]float64, dS [][]float64, nNodes int) [][]float64 {
	J := la.MatAlloc(2, 2)
	for n := 0; n < nNodes; n++ {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				J[i][j] += xv[n][i] * dS[n][j]
			}
		}
	}
	return J
}
