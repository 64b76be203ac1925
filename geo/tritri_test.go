// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_tritri_identical(tst *testing.T) {

	chk.PrintTitle("Test tritri_identical: a triangle against itself has distance 0")

	t1 := Triangle{
		NewVec3(0, 0, 0), NewVec3(1, 0, 0), NewVec3(0, 1, 0),
	}
	dist, _ := TriTriDistance(t1, t1, 1e-9)
	if math.Abs(dist) > 1e-9 {
		tst.Errorf("dist=%g, want 0\n", dist)
	}
}

func Test_tritri_separated(tst *testing.T) {

	chk.PrintTitle("Test tritri_separated: parallel triangles 2 apart in z")

	t1 := Triangle{NewVec3(0, 0, 0), NewVec3(1, 0, 0), NewVec3(0, 1, 0)}
	t2 := Triangle{NewVec3(0, 0, 2), NewVec3(1, 0, 2), NewVec3(0, 1, 2)}
	dist, sep := TriTriDistance(t1, t2, 1e-9)
	if math.Abs(dist-2) > 1e-9 {
		tst.Errorf("dist=%g, want 2\n", dist)
	}
	if math.Abs(sep.Norm()-2) > 1e-8 {
		tst.Errorf("|separation|=%g, want 2\n", sep.Norm())
	}
	io.Pforan("separated: dist=%g sep=%v\n", dist, sep)
}

func Test_tritri_touching(tst *testing.T) {

	chk.PrintTitle("Test tritri_touching: triangles sharing a vertex")

	t1 := Triangle{NewVec3(0, 0, 0), NewVec3(1, 0, 0), NewVec3(0, 1, 0)}
	t2 := Triangle{NewVec3(1, 0, 0), NewVec3(2, 0, 0), NewVec3(1, 1, 0)}
	dist, _ := TriTriDistance(t1, t2, 1e-9)
	if math.Abs(dist) > 1e-9 {
		tst.Errorf("dist=%g, want 0\n", dist)
	}
}

func Test_tritri_coplanar_nested(tst *testing.T) {

	chk.PrintTitle("Test tritri_coplanar_nested: small triangle fully inside a larger coplanar one")

	t1 := Triangle{NewVec3(0, 0, 0), NewVec3(4, 0, 0), NewVec3(0, 4, 0)}
	t2 := Triangle{NewVec3(1, 1, 0), NewVec3(2, 1, 0), NewVec3(1, 2, 0)}
	dist, _ := TriTriDistance(t1, t2, 1e-9)
	if math.Abs(dist) > 1e-9 {
		tst.Errorf("dist=%g, want 0\n", dist)
	}
}

func Test_tritri_symmetry(tst *testing.T) {

	chk.PrintTitle("Test tritri_symmetry: distance is symmetric, separation flips sign")

	t1 := Triangle{NewVec3(0, 0, 0), NewVec3(1, 0, 0), NewVec3(0, 1, 0)}
	t2 := Triangle{NewVec3(0, 0, 3), NewVec3(1, 0, 3), NewVec3(0, 1, 3)}
	d12, sep12 := TriTriDistance(t1, t2, 1e-9)
	d21, sep21 := TriTriDistance(t2, t1, 1e-9)
	if math.Abs(d12-d21) > 1e-9 {
		tst.Errorf("d12=%g d21=%g, want equal\n", d12, d21)
	}
	if sep12.Add(sep21).Norm() > 1e-6 {
		tst.Errorf("sep12=%v sep21=%v, want opposite\n", sep12, sep21)
	}
}

func Test_segment_distance_basic(tst *testing.T) {

	chk.PrintTitle("Test segment_distance_basic: perpendicular segments offset by 1")

	p1 := NewVec3(0, 0, 0)
	q1 := NewVec3(1, 0, 0)
	p2 := NewVec3(0, 0, 1)
	q2 := NewVec3(0, 1, 1)
	dist, _, _ := SegmentDistance(p1, q1, p2, q2)
	if math.Abs(dist-1) > 1e-9 {
		tst.Errorf("dist=%g, want 1\n", dist)
	}
}
