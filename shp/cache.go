// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "sync"

// orderMaps holds a forward (structured->external-position) permutation
// and its inverse, for one node count n.
type orderMaps struct {
	structToExt []int // structToExt[structuredIdx] = external position
	extToStruct []int // extToStruct[externalPos]  = structured index
}

// OrderingCache is the process-wide, write-once-per-n map from node
// count to its structured<->external permutation pair. A concurrent
// cache miss is tolerated: two goroutines may both compute the same
// permutation for a given n and both publish it; the results are
// identical since the computation is a pure function of n, so the
// duplicate work is benign.
type OrderingCache struct {
	quad sync.Map // n (int) -> *orderMaps
	hex  sync.Map // n (int) -> *orderMaps
}

var defaultCache OrderingCache

func (c *OrderingCache) quadMaps(n int) *orderMaps {
	if v, ok := c.quad.Load(n); ok {
		return v.(*orderMaps)
	}
	ext := gmshToStructuredQuad(n) // external position -> structured index
	m := &orderMaps{extToStruct: ext, structToExt: invertPermutation(ext)}
	actual, _ := c.quad.LoadOrStore(n, m)
	return actual.(*orderMaps)
}

func (c *OrderingCache) hexMaps(n int) *orderMaps {
	if v, ok := c.hex.Load(n); ok {
		return v.(*orderMaps)
	}
	ext := gmshToStructuredHex(n) // external position -> structured index
	m := &orderMaps{extToStruct: ext, structToExt: invertPermutation(ext)}
	actual, _ := c.hex.LoadOrStore(n, m)
	return actual.(*orderMaps)
}

// GmshToStructuredQuad returns, for an n-node quad, the permutation
// mapping each external (gmsh) position to its structured lexicographic
// index. The returned slice is shared and must not be modified.
func GmshToStructuredQuad(n int) []int { return defaultCache.quadMaps(n).extToStruct }

// StructuredToGmshQuad returns the inverse of GmshToStructuredQuad.
// The returned slice is shared and must not be modified.
func StructuredToGmshQuad(n int) []int { return defaultCache.quadMaps(n).structToExt }

// GmshToStructuredHex returns, for an n-node hex, the permutation
// mapping each external (gmsh) position to its structured lexicographic
// index. The returned slice is shared and must not be modified.
func GmshToStructuredHex(n int) []int { return defaultCache.hexMaps(n).extToStruct }

// StructuredToGmshHex returns the inverse of GmshToStructuredHex.
// The returned slice is shared and must not be modified.
func StructuredToGmshHex(n int) []int { return defaultCache.hexMaps(n).structToExt }
