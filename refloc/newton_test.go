// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refloc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/EdinSmartLab/tioga/shp"
)

func unitCubeHex8() [][]float64 {
	return [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
}

func Test_newton_unit_cube(tst *testing.T) {

	chk.PrintTitle("Test newton_unit_cube: centroid maps to origin, inside")

	xv := unitCubeHex8()
	rst, inside := Solve(xv, []float64{0.5, 0.5, 0.5}, 3, 8)
	if !inside {
		tst.Errorf("expected inside=true, got false (rst=%v)\n", rst)
		return
	}
	for i, v := range rst {
		if math.Abs(v) > 1e-8 {
			tst.Errorf("rst[%d]=%g, want 0\n", i, v)
		}
	}
	io.Pforan("centroid -> rst=%v\n", rst)
}

func Test_newton_corner(tst *testing.T) {

	chk.PrintTitle("Test newton_corner: a corner of the element is still inside, at |rst|=1")

	xv := unitCubeHex8()
	rst, inside := Solve(xv, []float64{1, 0, 0}, 3, 8)
	if !inside {
		tst.Errorf("expected inside=true at a corner, got false (rst=%v)\n", rst)
		return
	}
	for i, v := range rst {
		if math.Abs(math.Abs(v)-1) > 1e-8 {
			tst.Errorf("rst[%d]=%g, want magnitude 1\n", i, v)
		}
	}
}

func Test_newton_outside(tst *testing.T) {

	chk.PrintTitle("Test newton_outside: point clearly outside the cube is reported as outside")

	xv := unitCubeHex8()
	_, inside := Solve(xv, []float64{1.5, 0.5, 0.5}, 3, 8)
	if inside {
		tst.Errorf("expected inside=false for a point well outside the element\n")
	}
}

func Test_newton_roundtrip(tst *testing.T) {

	chk.PrintTitle("Test newton_roundtrip: shape_hex(r0) mapped forward then solved back gives r0")

	xv := unitCubeHex8()
	r0 := []float64{0.3, -0.4, 0.1}
	S, err := shp.ShapeHex(r0[0], r0[1], r0[2], 8)
	if err != nil {
		tst.Errorf("ShapeHex: %v\n", err)
		return
	}
	target := make([]float64, 3)
	for i := 0; i < 3; i++ {
		for n := 0; n < 8; n++ {
			target[i] += S[n] * xv[n][i]
		}
	}
	rst, inside := Solve(xv, target, 3, 8)
	if !inside {
		tst.Errorf("expected inside=true\n")
		return
	}
	for i := 0; i < 3; i++ {
		if math.Abs(rst[i]-r0[i]) > 1e-8 {
			tst.Errorf("rst[%d]=%g, want %g\n", i, rst[i], r0[i])
		}
	}
}
