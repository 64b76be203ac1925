// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_order01(tst *testing.T) {

	chk.PrintTitle("Test order01: structured<->external is a permutation and round-trips")

	for _, n := range []int{4, 8, 9, 16, 25} {
		fwd := GmshToStructuredQuad(n)
		bwd := StructuredToGmshQuad(n)
		io.Pforan("quad n=%d fwd=%v\n", n, fwd)
		seen := make(map[int]bool)
		for _, v := range fwd {
			if v < 0 || v >= n || seen[v] {
				tst.Errorf("quad n=%d: forward map is not a permutation\n", n)
				return
			}
			seen[v] = true
		}
		for structIdx := 0; structIdx < n; structIdx++ {
			extPos := bwd[structIdx]
			if fwd[extPos] != structIdx {
				tst.Errorf("quad n=%d: round trip failed at struct=%d\n", n, structIdx)
				return
			}
		}
	}

	for _, n := range []int{8, 27, 64} {
		fwd := GmshToStructuredHex(n)
		bwd := StructuredToGmshHex(n)
		io.Pfyel("hex n=%d fwd=%v\n", n, fwd)
		seen := make(map[int]bool)
		for _, v := range fwd {
			if v < 0 || v >= n || seen[v] {
				tst.Errorf("hex n=%d: forward map is not a permutation\n", n)
				return
			}
			seen[v] = true
		}
		for structIdx := 0; structIdx < n; structIdx++ {
			extPos := bwd[structIdx]
			if fwd[extPos] != structIdx {
				tst.Errorf("hex n=%d: round trip failed at struct=%d\n", n, structIdx)
				return
			}
		}
	}
}
