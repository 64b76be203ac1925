// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "github.com/cpmech/gosl/chk"

// Node-ordering maps between the structured (i,j,k,...) lexicographic
// layout and the external "gmsh" recursive layout: at each shell, from
// the outside in, emit corners, then edges, then (hex only) faces, then
// a center node if the remaining side length is odd. Memoized by node
// count via OrderingCache (see cache.go).

// structuredIndexQuad returns the lexicographic index i + n*j.
func structuredIndexQuad(i, j, n int) int { return i + n*j }

// structuredIndexHex returns the lexicographic index i + n*j + n*n*k.
func structuredIndexHex(i, j, k, n int) int { return i + n*j + n*n*k }

// gmshToStructuredQuad builds the external-order slice of structured
// indices for an nNodes-node quad: external[extPos] = structuredIndex.
func gmshToStructuredQuad(nNodes int) []int {
	if nNodes == 8 {
		// 8-node serendipity quad: fixed permutation. The structured side
		// is the row-major walk of the 3x3 grid with the center skipped:
		// (0,0)(1,0)(2,0)(0,1)(2,1)(0,2)(1,2)(2,2) -> 0..7; the external
		// side is corners then mid-edge nodes.
		return []int{0, 2, 7, 5, 1, 4, 6, 3}
	}
	n, ok := resolveOrder(nNodes, 2)
	if !ok {
		chk.Panic("shp: quad ordering map: nNodes=%d is not a perfect square (nor 8)", nNodes)
	}
	ext := make([]int, 0, nNodes)
	lo, hi := 0, n-1
	for lo < hi {
		// corners of this shell
		ext = append(ext,
			structuredIndexQuad(lo, lo, n),
			structuredIndexQuad(hi, lo, n),
			structuredIndexQuad(hi, hi, n),
			structuredIndexQuad(lo, hi, n),
		)
		// edges of this shell (interior points along each side)
		for i := lo + 1; i < hi; i++ {
			ext = append(ext, structuredIndexQuad(i, lo, n)) // bottom
		}
		for j := lo + 1; j < hi; j++ {
			ext = append(ext, structuredIndexQuad(hi, j, n)) // right
		}
		for i := hi - 1; i > lo; i-- {
			ext = append(ext, structuredIndexQuad(i, hi, n)) // top
		}
		for j := hi - 1; j > lo; j-- {
			ext = append(ext, structuredIndexQuad(lo, j, n)) // left
		}
		lo++
		hi--
	}
	if lo == hi {
		// single interior node (odd side length)
		ext = append(ext, structuredIndexQuad(lo, lo, n))
	}
	return ext
}

// gmshToStructuredHex builds the external-order slice of structured
// indices for an nNodes-node hex. The 20-node serendipity hex bypasses
// this entirely (shp.ShapeHex handles it with a closed form, see
// hex20.go).
func gmshToStructuredHex(nNodes int) []int {
	n, ok := resolveOrder(nNodes, 3)
	if !ok {
		chk.Panic("shp: hex ordering map: nNodes=%d is not a perfect cube", nNodes)
	}
	ext := make([]int, 0, nNodes)
	lo, hi := 0, n-1
	for lo < hi {
		sideN := hi - lo + 1
		// 8 corners of this shell
		ext = append(ext,
			structuredIndexHex(lo, lo, lo, n), structuredIndexHex(hi, lo, lo, n),
			structuredIndexHex(hi, hi, lo, n), structuredIndexHex(lo, hi, lo, n),
			structuredIndexHex(lo, lo, hi, n), structuredIndexHex(hi, lo, hi, n),
			structuredIndexHex(hi, hi, hi, n), structuredIndexHex(lo, hi, hi, n),
		)
		// 12 edges of this shell (interior points along each edge)
		for i := lo + 1; i < hi; i++ {
			ext = append(ext, structuredIndexHex(i, lo, lo, n))
		}
		for j := lo + 1; j < hi; j++ {
			ext = append(ext, structuredIndexHex(hi, j, lo, n))
		}
		for i := lo + 1; i < hi; i++ {
			ext = append(ext, structuredIndexHex(i, hi, lo, n))
		}
		for j := lo + 1; j < hi; j++ {
			ext = append(ext, structuredIndexHex(lo, j, lo, n))
		}
		for i := lo + 1; i < hi; i++ {
			ext = append(ext, structuredIndexHex(i, lo, hi, n))
		}
		for j := lo + 1; j < hi; j++ {
			ext = append(ext, structuredIndexHex(hi, j, hi, n))
		}
		for i := lo + 1; i < hi; i++ {
			ext = append(ext, structuredIndexHex(i, hi, hi, n))
		}
		for j := lo + 1; j < hi; j++ {
			ext = append(ext, structuredIndexHex(lo, j, hi, n))
		}
		for k := lo + 1; k < hi; k++ {
			ext = append(ext, structuredIndexHex(lo, lo, k, n))
		}
		for k := lo + 1; k < hi; k++ {
			ext = append(ext, structuredIndexHex(hi, lo, k, n))
		}
		for k := lo + 1; k < hi; k++ {
			ext = append(ext, structuredIndexHex(hi, hi, k, n))
		}
		for k := lo + 1; k < hi; k++ {
			ext = append(ext, structuredIndexHex(lo, hi, k, n))
		}
		// 6 faces (each a quad recursion one level in), only when the
		// shell has interior face nodes (sideN >= 3)
		if sideN >= 3 {
			ext = append(ext, faceInterior(lo, hi, n, 2, lo)...)  // z = lo (bottom)
			ext = append(ext, faceInterior(lo, hi, n, 2, hi)...)  // z = hi (top)
			ext = append(ext, faceInterior(lo, hi, n, 1, lo)...)  // y = lo (front)
			ext = append(ext, faceInterior(lo, hi, n, 1, hi)...)  // y = hi (back)
			ext = append(ext, faceInterior(lo, hi, n, 0, lo)...)  // x = lo (left)
			ext = append(ext, faceInterior(lo, hi, n, 0, hi)...)  // x = hi (right)
		}
		lo++
		hi--
	}
	if lo == hi {
		ext = append(ext, structuredIndexHex(lo, lo, lo, n))
	}
	return ext
}

// faceInterior returns the structured indices of the strictly-interior
// nodes of one face of the (lo..hi)^3 shell, with `axis` held at `fixed`
// (axis 0 => x, 1 => y, 2 => z), walked in the same recursive
// corners-then-edges-then-center order a standalone quad would use, one
// level further in.
func faceInterior(lo, hi, n, axis, fixed int) []int {
	a, b := lo+1, hi-1
	if a > b {
		return nil
	}
	idx := func(u, v int) int {
		switch axis {
		case 0:
			return structuredIndexHex(fixed, u, v, n)
		case 1:
			return structuredIndexHex(u, fixed, v, n)
		default:
			return structuredIndexHex(u, v, fixed, n)
		}
	}
	out := make([]int, 0, (b-a+1)*(b-a+1))
	flo, fhi := a, b
	for flo < fhi {
		out = append(out, idx(flo, flo), idx(fhi, flo), idx(fhi, fhi), idx(flo, fhi))
		for u := flo + 1; u < fhi; u++ {
			out = append(out, idx(u, flo))
		}
		for v := flo + 1; v < fhi; v++ {
			out = append(out, idx(fhi, v))
		}
		for u := fhi - 1; u > flo; u-- {
			out = append(out, idx(u, fhi))
		}
		for v := fhi - 1; v > flo; v-- {
			out = append(out, idx(flo, v))
		}
		flo++
		fhi--
	}
	if flo == fhi {
		out = append(out, idx(flo, flo))
	}
	return out
}

// invertPermutation returns inv such that inv[p[i]] = i for all i.
func invertPermutation(p []int) []int {
	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}
