// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"runtime"
	"sync"

	"github.com/EdinSmartLab/tioga/geo"
)

// Result is one element's classification outcome.
type Result struct {
	Flag       Flag
	Separation geo.Vec3
}

// ClassifyAll runs ClassifyElement for every element against the full
// facet list. The outer loop is embarrassingly parallel: each element
// reads shared immutable inputs and writes exactly one slot of the
// output, so a data-parallel launch and a fenced single-thread walk
// produce identical results. Facets are never parallelized within one
// element's own scan, so the order-dependent averaged-normal tie-break
// is unaffected by the worker count.
func ClassifyAll(elements []Element, facets []Facet, cutType CutType, sorder, sorderF int) []Result {
	out := make([]Result, len(elements))
	nWorkers := runtime.GOMAXPROCS(0)
	if nWorkers > len(elements) {
		nWorkers = len(elements)
	}
	if nWorkers < 1 {
		nWorkers = 1
	}

	var idx int64 = -1
	var mu sync.Mutex
	next := func() int {
		mu.Lock()
		defer mu.Unlock()
		idx++
		if int(idx) >= len(elements) {
			return -1
		}
		return int(idx)
	}

	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := next()
				if i < 0 {
					return
				}
				flag, sep := ClassifyElement(elements[i], facets, cutType, sorder, sorderF)
				out[i] = Result{Flag: flag, Separation: sep}
			}
		}()
	}
	wg.Wait()
	return out
}
