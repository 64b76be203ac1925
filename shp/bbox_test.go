// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_bbox_basic(tst *testing.T) {

	chk.PrintTitle("Test bbox_basic")

	pts := [][]float64{
		{0, 0, 0}, {2, -1, 3}, {1, 5, -2},
	}
	min, max := BoundingBox(pts, 3, 3)
	wantMin := []float64{0, -1, -2}
	wantMax := []float64{2, 5, 3}
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > 1e-14 {
			tst.Errorf("min[%d]=%g, want %g\n", i, min[i], wantMin[i])
		}
		if math.Abs(max[i]-wantMax[i]) > 1e-14 {
			tst.Errorf("max[%d]=%g, want %g\n", i, max[i], wantMax[i])
		}
	}
}

func Test_face_normal_3d(tst *testing.T) {

	chk.PrintTitle("Test face_normal_3d: unit square in z=0 plane gives +-z normal")

	v0 := []float64{0, 0, 0}
	v1 := []float64{1, 0, 0}
	v2 := []float64{1, 1, 0}
	v3 := []float64{0, 1, 0}
	n := FaceNormal3D(v0, v1, v2, v3)
	if math.Abs(math.Abs(n[2])-1) > 1e-10 {
		tst.Errorf("normal=%v, want unit vector along z\n", n)
	}
	if math.Abs(n[0]) > 1e-10 || math.Abs(n[1]) > 1e-10 {
		tst.Errorf("normal=%v, want zero x,y components\n", n)
	}
}

func Test_face_normal_2d(tst *testing.T) {

	chk.PrintTitle("Test face_normal_2d: horizontal segment gives vertical normal")

	p1 := []float64{0, 0}
	p2 := []float64{1, 0}
	n := FaceNormal2D(p1, p2)
	if math.Abs(n[0]) > 1e-10 || math.Abs(math.Abs(n[1])-1) > 1e-10 {
		tst.Errorf("normal=%v, want (0,+-1)\n", n)
	}
}
