// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func cubeVerts(L float64) [][]float64 {
	return [][]float64{
		{0, 0, 0}, {L, 0, 0}, {L, L, 0}, {0, L, 0},
		{0, 0, L}, {L, 0, L}, {L, L, L}, {0, L, L},
	}
}

func Test_volume_cube(tst *testing.T) {

	chk.PrintTitle("Test volume_cube: straight-sided axis-aligned hex gives L^3")

	for _, L := range []float64{1.0, 2.0, 0.37} {
		vol, err := Volume(cubeVerts(L), 8, 3, 2)
		if err != nil {
			tst.Errorf("L=%g: %v\n", L, err)
			return
		}
		want := L * L * L
		if math.Abs(vol-want) > 1e-10 {
			tst.Errorf("L=%g: vol=%g, want %g\n", L, vol, want)
			return
		}
		io.Pforan("L=%g: vol=%g OK\n", L, vol)
	}
}

func squareVerts(L float64) [][]float64 {
	return [][]float64{{0, 0}, {L, 0}, {L, L}, {0, L}}
}

func Test_volume_square(tst *testing.T) {

	chk.PrintTitle("Test volume_square: straight-sided axis-aligned quad gives L^2 (area)")

	for _, L := range []float64{1.0, 3.0} {
		area, err := Volume(squareVerts(L), 4, 2, 2)
		if err != nil {
			tst.Errorf("L=%g: %v\n", L, err)
			return
		}
		want := L * L
		if math.Abs(area-want) > 1e-10 {
			tst.Errorf("L=%g: area=%g, want %g\n", L, area, want)
			return
		}
	}
}

func Test_volume_negative_jacobian(tst *testing.T) {

	chk.PrintTitle("Test volume_negative_jacobian: inverted hex triggers NegativeJacobian")

	v := cubeVerts(1.0)
	// swap two base nodes to flip the orientation of the bottom face
	v[0], v[1] = v[1], v[0]
	_, err := Volume(v, 8, 3, 2)
	if err == nil {
		tst.Errorf("expected NegativeJacobian error\n")
		return
	}
	if _, ok := err.(*NegativeJacobian); !ok {
		tst.Errorf("expected *NegativeJacobian, got %T\n", err)
	}
}
