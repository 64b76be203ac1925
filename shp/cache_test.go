// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"sync"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_cache_concurrent_miss(tst *testing.T) {

	chk.PrintTitle("Test cache_concurrent_miss: racing goroutines agree on the published permutation")

	var c OrderingCache
	const workers = 16
	results := make([][]int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w] = c.hexMaps(27).extToStruct
		}(w)
	}
	wg.Wait()

	want := results[0]
	for w := 1; w < workers; w++ {
		if len(results[w]) != len(want) {
			tst.Errorf("worker %d: length %d, want %d\n", w, len(results[w]), len(want))
			return
		}
		for i := range want {
			if results[w][i] != want[i] {
				tst.Errorf("worker %d: permutation differs at %d\n", w, i)
				return
			}
		}
	}
}
