// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"math"

	"github.com/EdinSmartLab/tioga/geo"
	"github.com/EdinSmartLab/tioga/shp"
)

// DefaultSorder/DefaultSorderF are the default sub-quad sampling
// resolutions for the element surface and the cutting facet. Small
// values keep the per-element scan cheap; raise them for thin/highly
// curved facets.
const (
	DefaultSorder  = 3
	DefaultSorderF = 3
)

// accumulator is the per-element, per-pass scratch state: the currently
// winning distance, the averaged outward normal, its dot with the
// separation direction, and how many facets contributed to the average.
type accumulator struct {
	flag   Flag
	dist   float64
	normal geo.Vec3
	sep    geo.Vec3
	dot    float64
	count  int
}

// ClassifyElement classifies one element against a set of cutting
// facets. cutType selects facet-normal orientation
// (CutTypeFlip flips the outward normal before the dot-product test).
func ClassifyElement(el Element, facets []Facet, cutType CutType, sorder, sorderF int) (flag Flag, separation geo.Vec3) {
	acc := accumulator{flag: UNASSIGNED, dist: math.Inf(1)}

	elMin, elMax := shp.BoundingBox(el.Verts, el.NNodes, 3)
	extent := (elMax[0] - elMin[0]) + (elMax[1] - elMin[1]) + (elMax[2] - elMin[2])
	btol := extent
	dtol := 1e-3 * btol

	// maxDim bounds how far a facet can be while still meaningfully
	// claiming the element as lying on its inside: the sign of
	// normal.dot(separation) is scale invariant and stays constant as a
	// facet recedes straight back along its own normal, so a facet
	// farther than the element's own largest extent is treated as
	// NORMAL regardless of that sign.
	maxDim := 0.0
	for i := 0; i < 3; i++ {
		if d := elMax[i] - elMin[i]; d > maxDim {
			maxDim = d
		}
	}

	elemTris := elementSurfaceTriangles(el, sorder)
	anyInRange := false
	elCentroid := elementCentroid(el)

	// nearestCentroidSep points from the box-nearest facet's centroid to
	// the element centroid, tracked across every facet (even ones
	// rejected by the bounding-box test) so a last-resort separation
	// vector is available when no facet ever comes within btol. Its dot
	// with the facet normal is positive when the element sits on the
	// facet's inside (the HOLE side).
	nearestBoxGap := math.Inf(1)
	var nearestCentroidSep geo.Vec3
	haveNearestCentroidSep := false

	for _, f := range facets {
		fMin, fMax := shp.BoundingBox(f.Verts, f.Nfv, 3)
		gap := boxGap(elMin, elMax, fMin, fMax)
		if gap < nearestBoxGap {
			nearestBoxGap = gap
			nearestCentroidSep = elCentroid.Sub(facetCentroid(f))
			haveNearestCentroidSep = true
		}
		if gap > btol {
			continue
		}
		anyInRange = true

		if acc.flag == CUT {
			continue // cut cannot be un-cut within one pass
		}

		facetTris := facetSurfaceTriangles(f, sorderF)
		best := math.Inf(1)
		var bestSep geo.Vec3
		for _, et := range elemTris {
			for _, ft := range facetTris {
				d, sep := geo.TriTriDistance(et, ft, 1e-12)
				if d < best {
					best, bestSep = d, sep
				}
			}
		}

		if best < 1e-8*btol {
			trace("element %d facet %d: distance %g below cut threshold -> CUT\n", el.Id, f.Id, best)
			acc.flag = CUT
			acc.dist = 0
			continue
		}

		newNormal := facetOutwardNormal(f, cutType)
		dot := newNormal.Dot(bestSep.Normalized())

		switch {
		case acc.flag == UNASSIGNED || best < acc.dist-dtol:
			acc.normal = newNormal
			acc.dot = dot
			acc.count = 1
			acc.dist = best
			acc.sep = bestSep
			if dot < 0 && best <= maxDim {
				acc.flag = HOLE
			} else {
				acc.flag = NORMAL
			}
		case math.Abs(best-acc.dist) <= dtol:
			acc.normal = acc.normal.Scale(float64(acc.count)).Add(newNormal).Scale(1 / float64(acc.count+1))
			acc.dot = acc.normal.Dot(bestSep.Normalized())
			acc.count++
			acc.sep = bestSep
			if acc.dot < 0 && best <= maxDim {
				acc.flag = HOLE
			} else {
				acc.flag = NORMAL
			}
		default:
			// strictly farther: ignore
		}
		trace("element %d facet %d: dist=%g dot=%g flag=%s\n", el.Id, f.Id, best, acc.dot, acc.flag)
	}

	if !anyInRange && haveNearestCentroidSep {
		return acc.flag, nearestCentroidSep
	}
	return acc.flag, acc.sep
}

// boxGap returns the largest per-axis separation between two axis-aligned
// boxes (0 or negative if they overlap on every axis).
func boxGap(min1, max1, min2, max2 []float64) float64 {
	gap := math.Inf(-1)
	for i := 0; i < 3; i++ {
		if d := min2[i] - max1[i]; d > gap {
			gap = d
		}
		if d := min1[i] - max2[i]; d > gap {
			gap = d
		}
	}
	return gap
}

func elementCentroid(el Element) geo.Vec3 {
	var c geo.Vec3
	for _, v := range el.Verts {
		c = c.Add(geo.FromSlice(v))
	}
	return c.Scale(1 / float64(el.NNodes))
}

func facetCentroid(f Facet) geo.Vec3 {
	var c geo.Vec3
	for _, v := range f.Verts {
		c = c.Add(geo.FromSlice(v))
	}
	return c.Scale(1 / float64(f.Nfv))
}

// facetOutwardNormal returns the facet's outward normal at its
// reference-space center, flipped if cutType == CutTypeFlip.
func facetOutwardNormal(f Facet, cutType CutType) geo.Vec3 {
	n := quadNormalAt(f.Verts, f.Nfv, 0, 0)
	if cutType == CutTypeFlip {
		n = n.Scale(-1)
	}
	return n
}
