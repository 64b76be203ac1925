// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"math"

	"github.com/EdinSmartLab/tioga/optimize"
	"github.com/EdinSmartLab/tioga/refloc"
)

// FacetPenetrates confirms whether facet f's surface passes through
// element el. It first samples the facet on a coarse reference grid and
// asks the Newton solver whether any sample lands inside the element;
// when every sample misses (the facet may graze a curved element
// between samples), it falls back to a constrained Nelder-Mead search
// over the facet's reference square, minimizing how far outside the
// element the mapped point is. Intended as the confirmation step after
// a near-zero triangle-triangle distance, not as a replacement for the
// distance scan.
func FacetPenetrates(el Element, f Facet) bool {
	toRST := func(uv []float64) []float64 {
		p := physicalAtQuad(f, uv[0], uv[1])
		rst, _ := refloc.Solve(el.Verts, p.Slice(), 3, el.NNodes)
		return rst
	}

	// coarse grid first: cheap and catches the common case
	for _, u := range []float64{-1, -0.5, 0, 0.5, 1} {
		for _, v := range []float64{-1, -0.5, 0, 0.5, 1} {
			p := physicalAtQuad(f, u, v)
			if _, inside := refloc.Solve(el.Verts, p.Slice(), 3, el.NNodes); inside {
				return true
			}
		}
	}

	obj := optimize.BarrierObjective(toRST)
	cons := func(uv []float64) float64 {
		m := math.Max(math.Abs(uv[0]), math.Abs(uv[1]))
		if m > 1 {
			return m - 1
		}
		return -1
	}
	_, value := optimize.NelderMead(optimize.Barrier(obj, cons), 2)
	return value < optimize.NM_TOL
}
