// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_confirm_facet_through_element(tst *testing.T) {

	chk.PrintTitle("Test confirm_facet_through_element: quad slicing the cube mid-height penetrates")

	el := unitCubeHex8()
	through := planarQuadAtZ(0.5)
	if !FacetPenetrates(el, through) {
		tst.Errorf("facet at z=0.5 slices the unit cube, expected penetration\n")
	}
	io.Pforan("mid-height facet: penetrates\n")
}

func Test_confirm_facet_outside_element(tst *testing.T) {

	chk.PrintTitle("Test confirm_facet_outside_element: quad 2 units below never penetrates")

	el := unitCubeHex8()
	below := planarQuadAtZ(-2)
	if FacetPenetrates(el, below) {
		tst.Errorf("facet at z=-2 is disjoint from the unit cube, expected no penetration\n")
	}
}
