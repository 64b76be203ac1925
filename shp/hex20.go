// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "github.com/cpmech/gosl/la"

// shapeHex20/dshapeHex20 give the closed-form 20-node serendipity hex
// basis and its derivatives at (r,s,t). No general recursion applies
// here: the node ordering is specific to this element and is given
// directly rather than derived from the tensor-product path.
//
// Node order (external/gmsh convention): 8 corners (0..7), then 12
// mid-edge nodes (8..19) following the corner-pair sequence
// (0,1)(1,2)(2,3)(3,0)(4,5)(5,6)(6,7)(7,4)(0,4)(1,5)(2,6)(3,7).
// Corner natural coordinates follow the same r/s/t sign pattern used
// throughout this package's hex corner ordering.

var hex20CornerR = []float64{-1, 1, 1, -1, -1, 1, 1, -1}
var hex20CornerS = []float64{-1, -1, 1, 1, -1, -1, 1, 1}
var hex20CornerT = []float64{-1, -1, -1, -1, 1, 1, 1, 1}

// hex20Edges lists, for each of the 12 mid-edge nodes (index 8..19),
// the pair of corner indices it sits between.
var hex20Edges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func shapeHex20(r, s, t float64) (S []float64) {
	S = make([]float64, 20)
	for c := 0; c < 8; c++ {
		rc, sc, tc := hex20CornerR[c], hex20CornerS[c], hex20CornerT[c]
		rr, ss, tt := 1+r*rc, 1+s*sc, 1+t*tc
		S[c] = rr * ss * tt * (r*rc + s*sc + t*tc - 2) / 8.0
	}
	for e := 0; e < 12; e++ {
		a, b := hex20Edges[e][0], hex20Edges[e][1]
		// the edge direction is constant in exactly one of r,s,t; the
		// other two coordinates share the corners' fixed signs.
		ra, sa, ta := hex20CornerR[a], hex20CornerS[a], hex20CornerT[a]
		rb, sb := hex20CornerR[b], hex20CornerS[b]
		switch {
		case ra != rb: // edge runs along r
			S[8+e] = (1 - r*r) * (1 + s*sa) * (1 + t*ta) / 4.0
		case sa != sb: // edge runs along s
			S[8+e] = (1 + r*ra) * (1 - s*s) * (1 + t*ta) / 4.0
		default: // edge runs along t
			S[8+e] = (1 + r*ra) * (1 + s*sa) * (1 - t*t) / 4.0
		}
	}
	return
}

func dshapeHex20(r, s, t float64) (dS [][]float64) {
	dS = la.MatAlloc(20, 3)
	for c := 0; c < 8; c++ {
		rc, sc, tc := hex20CornerR[c], hex20CornerS[c], hex20CornerT[c]
		rr, ss, tt := 1+r*rc, 1+s*sc, 1+t*tc
		poly := r*rc + s*sc + t*tc - 2
		dS[c][0] = (rc*ss*tt*poly + rr*ss*tt*rc) / 8.0
		dS[c][1] = (rr*sc*tt*poly + rr*ss*tt*sc) / 8.0
		dS[c][2] = (rr*ss*tc*poly + rr*ss*tt*tc) / 8.0
	}
	for e := 0; e < 12; e++ {
		a, b := hex20Edges[e][0], hex20Edges[e][1]
		ra, sa, ta := hex20CornerR[a], hex20CornerS[a], hex20CornerT[a]
		rb, sb := hex20CornerR[b], hex20CornerS[b]
		switch {
		case ra != rb:
			dS[8+e][0] = -0.5 * r * (1 + s*sa) * (1 + t*ta)
			dS[8+e][1] = 0.25 * (1 - r*r) * sa * (1 + t*ta)
			dS[8+e][2] = 0.25 * (1 - r*r) * (1 + s*sa) * ta
		case sa != sb:
			dS[8+e][0] = 0.25 * ra * (1 - s*s) * (1 + t*ta)
			dS[8+e][1] = -0.5 * s * (1 + r*ra) * (1 + t*ta)
			dS[8+e][2] = 0.25 * (1 + r*ra) * (1 - s*s) * ta
		default:
			dS[8+e][0] = 0.25 * ra * (1 + s*sa) * (1 - t*t)
			dS[8+e][1] = 0.25 * (1 + r*ra) * sa * (1 - t*t)
			dS[8+e][2] = -0.5 * t * (1 + r*ra) * (1 + s*sa)
		}
	}
	return
}
