// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

// Element is one volume cell of the mesh being classified: nNodes
// vertices in physical space, fed in directly by the driver. Node order
// follows the external gmsh-style recursive layout.
type Element struct {
	Id     int
	Verts  [][]float64 // [nNodes][3]
	NNodes int
}

// Facet is a cutting surface facet from a neighbor mesh: a planar or
// curved quad in 3-D with nfv vertices. The classifier samples every
// facet as a quad (nfv a perfect square, or 8); 2-D line-segment facets
// are not handled.
type Facet struct {
	Id    int
	Verts [][]float64 // [nfv][3]
	Nfv   int
}

// CutType selects the outward-normal orientation convention for facets:
// 0 flips the facet normal before comparing against the separation
// vector.
type CutType int

const (
	CutTypeFlip CutType = 0
	CutTypeKeep CutType = 1
)
