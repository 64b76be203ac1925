// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "github.com/cpmech/gosl/la"

// shapeQuad8/dshapeQuad8 give the closed-form 8-node serendipity quad
// basis and its derivatives at (r,s). This is the quad face of the
// 20-node serendipity hex (see hex20.go); like that element, the node
// ordering is given directly rather than derived from the
// tensor-product path.
//
// Node order (external/gmsh convention): 4 corners (0..3), then 4
// mid-edge nodes (4..7) between the corner pairs (0,1)(1,2)(2,3)(3,0),
// i.e. bottom, right, top, left.

var quad8CornerR = []float64{-1, 1, 1, -1}
var quad8CornerS = []float64{-1, -1, 1, 1}

// quad8Edges lists, for each of the 4 mid-edge nodes (index 4..7), the
// pair of corner indices it sits between.
var quad8Edges = [4][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
}

func shapeQuad8(r, s float64) (S []float64) {
	S = make([]float64, 8)
	for c := 0; c < 4; c++ {
		rc, sc := quad8CornerR[c], quad8CornerS[c]
		S[c] = (1 + r*rc) * (1 + s*sc) * (r*rc + s*sc - 1) / 4.0
	}
	for e := 0; e < 4; e++ {
		a, b := quad8Edges[e][0], quad8Edges[e][1]
		ra, sa := quad8CornerR[a], quad8CornerS[a]
		rb := quad8CornerR[b]
		if ra != rb { // edge runs along r
			S[4+e] = (1 - r*r) * (1 + s*sa) / 2.0
		} else { // edge runs along s
			S[4+e] = (1 + r*ra) * (1 - s*s) / 2.0
		}
	}
	return
}

func dshapeQuad8(r, s float64) (dS [][]float64) {
	dS = la.MatAlloc(8, 2)
	for c := 0; c < 4; c++ {
		rc, sc := quad8CornerR[c], quad8CornerS[c]
		dS[c][0] = rc * (1 + s*sc) * (2*r*rc + s*sc) / 4.0
		dS[c][1] = sc * (1 + r*rc) * (r*rc + 2*s*sc) / 4.0
	}
	for e := 0; e < 4; e++ {
		a, b := quad8Edges[e][0], quad8Edges[e][1]
		ra, sa := quad8CornerR[a], quad8CornerS[a]
		rb := quad8CornerR[b]
		if ra != rb {
			dS[4+e][0] = -r * (1 + s*sa)
			dS[4+e][1] = sa * (1 - r*r) / 2.0
		} else {
			dS[4+e][0] = ra * (1 - s*s) / 2.0
			dS[4+e][1] = -s * (1 + r*ra)
		}
	}
	return
}
