// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func unitCubeHex8() Element {
	return Element{
		Id:     0,
		NNodes: 8,
		Verts: [][]float64{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		},
	}
}

func planarQuadAtZ(z float64) Facet {
	return Facet{
		Id:  0,
		Nfv: 4,
		Verts: [][]float64{
			{-1, -1, z}, {2, -1, z}, {2, 2, z}, {-1, 2, z},
		},
	}
}

func Test_classify_clean_blanking(tst *testing.T) {

	chk.PrintTitle("Test classify_clean_blanking: cutting quad just under the element gives HOLE")

	el := unitCubeHex8()
	facets := []Facet{planarQuadAtZ(-0.1)}
	flag, sep := ClassifyElement(el, facets, CutTypeKeep, DefaultSorder, DefaultSorderF)
	if flag != HOLE {
		tst.Errorf("flag=%s, want HOLE\n", flag)
	}
	io.Pforan("clean blanking: flag=%s sep=%v\n", flag, sep)
}

func Test_classify_clearly_outside(tst *testing.T) {

	chk.PrintTitle("Test classify_clearly_outside: cutting quad 2 units below gives NORMAL, distance 2")

	el := unitCubeHex8()
	facets := []Facet{planarQuadAtZ(-2)}
	flag, sep := ClassifyElement(el, facets, CutTypeKeep, DefaultSorder, DefaultSorderF)
	if flag != NORMAL {
		tst.Errorf("flag=%s, want NORMAL\n", flag)
	}
	if math.Abs(sep.Norm()-2) > 1e-9 {
		tst.Errorf("|separation|=%g, want 2\n", sep.Norm())
	}
	io.Pforan("clearly outside: flag=%s dist=%g\n", flag, sep.Norm())
}

func Test_classify_all_matches_serial(tst *testing.T) {

	chk.PrintTitle("Test classify_all_matches_serial: parallel classification agrees with a serial walk")

	elements := []Element{unitCubeHex8(), unitCubeHex8(), unitCubeHex8()}
	facets := []Facet{planarQuadAtZ(-0.1)}

	parallelResults := ClassifyAll(elements, facets, CutTypeKeep, DefaultSorder, DefaultSorderF)

	for i, el := range elements {
		flag, sep := ClassifyElement(el, facets, CutTypeKeep, DefaultSorder, DefaultSorderF)
		if parallelResults[i].Flag != flag {
			tst.Errorf("element %d: parallel flag=%s, serial flag=%s\n", i, parallelResults[i].Flag, flag)
		}
		if parallelResults[i].Separation.Sub(sep).Norm() > 1e-12 {
			tst.Errorf("element %d: parallel sep=%v, serial sep=%v\n", i, parallelResults[i].Separation, sep)
		}
	}
}
