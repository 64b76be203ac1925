// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"github.com/EdinSmartLab/tioga/geo"
	"github.com/EdinSmartLab/tioga/shp"
)

// hexFaces lists the 6 faces of the reference cube as (fixed axis,
// fixed value) pairs: axis 0=r, 1=s, 2=t.
var hexFaces = [6][2]float64{
	{0, -1}, {0, 1},
	{1, -1}, {1, 1},
	{2, -1}, {2, 1},
}

// physicalAtHex evaluates the physical position of element el at
// reference coordinate (r,s,t). A ShapeOrderMismatch is a caller bug
// (an element built with an unsupported node count) and is fatal.
func physicalAtHex(el Element, r, s, t float64) geo.Vec3 {
	S, err := shp.ShapeHex(r, s, t, el.NNodes)
	PanicOnErr(err, "cut: sampling element surface")
	var p geo.Vec3
	for n := 0; n < el.NNodes; n++ {
		p = p.Add(geo.FromSlice(el.Verts[n]).Scale(S[n]))
	}
	return p
}

// physicalAtQuad evaluates the physical position of facet f at
// reference coordinate (r,s). A ShapeOrderMismatch is a caller bug (a
// facet built with an unsupported node count) and is fatal.
func physicalAtQuad(f Facet, r, s float64) geo.Vec3 {
	S, err := shp.ShapeQuad(r, s, f.Nfv)
	PanicOnErr(err, "cut: sampling cutting facet")
	var p geo.Vec3
	for n := 0; n < f.Nfv; n++ {
		p = p.Add(geo.FromSlice(f.Verts[n]).Scale(S[n]))
	}
	return p
}

// quadNormalAt returns the outward unit normal of facet f at reference
// coordinate (r,s), via a small central-difference tangent frame (works
// for curved as well as planar facets).
func quadNormalAt(verts [][]float64, nfv int, r, s float64) geo.Vec3 {
	const h = 1e-4
	f := Facet{Verts: verts, Nfv: nfv}
	p0 := physicalAtQuad(f, r-h, s)
	p1 := physicalAtQuad(f, r+h, s)
	q0 := physicalAtQuad(f, r, s-h)
	q1 := physicalAtQuad(f, r, s+h)
	tR := p1.Sub(p0)
	tS := q1.Sub(q0)
	return tR.Cross(tS).Normalized()
}

// gridPoints1D returns n+1 samples of [-1,1] at uniform spacing.
func gridPoints1D(n int) []float64 {
	pts := make([]float64, n+1)
	h := 2.0 / float64(n)
	for i := 0; i <= n; i++ {
		pts[i] = -1.0 + float64(i)*h
	}
	return pts
}

// elementSurfaceTriangles samples el's outer surface as a grid of
// sub-quads on each of the 6 faces (sorder² sub-cells per face), each
// split into two triangles.
func elementSurfaceTriangles(el Element, sorder int) []geo.Triangle {
	grid := gridPoints1D(sorder)
	tris := make([]geo.Triangle, 0, 6*sorder*sorder*2)
	for _, face := range hexFaces {
		axis, val := int(face[0]), face[1]
		for i := 0; i < sorder; i++ {
			for j := 0; j < sorder; j++ {
				a, b := grid[i], grid[i+1]
				c, d := grid[j], grid[j+1]
				p00 := hexFaceEval(el, axis, val, a, c)
				p10 := hexFaceEval(el, axis, val, b, c)
				p11 := hexFaceEval(el, axis, val, b, d)
				p01 := hexFaceEval(el, axis, val, a, d)
				tris = append(tris, geo.Triangle{p00, p10, p11})
				tris = append(tris, geo.Triangle{p00, p11, p01})
			}
		}
	}
	return tris
}

// hexFaceEval evaluates the element's physical position on the face
// where reference axis `axis` is held at `val`, parametrized by (u,v)
// over the other two axes in ascending axis order.
func hexFaceEval(el Element, axis int, val, u, v float64) geo.Vec3 {
	switch axis {
	case 0:
		return physicalAtHex(el, val, u, v)
	case 1:
		return physicalAtHex(el, u, val, v)
	default:
		return physicalAtHex(el, u, v, val)
	}
}

// facetSurfaceTriangles samples facet f as a sorderF² grid of sub-quads,
// each split into two triangles.
func facetSurfaceTriangles(f Facet, sorderF int) []geo.Triangle {
	grid := gridPoints1D(sorderF)
	tris := make([]geo.Triangle, 0, sorderF*sorderF*2)
	for i := 0; i < sorderF; i++ {
		for j := 0; j < sorderF; j++ {
			a, b := grid[i], grid[i+1]
			c, d := grid[j], grid[j+1]
			p00 := physicalAtQuad(f, a, c)
			p10 := physicalAtQuad(f, b, c)
			p11 := physicalAtQuad(f, b, d)
			p01 := physicalAtQuad(f, a, d)
			tris = append(tris, geo.Triangle{p00, p10, p11})
			tris = append(tris, geo.Triangle{p00, p11, p01})
		}
	}
	return tris
}
