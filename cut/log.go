// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Verbose gates the classifier's optional per-facet diagnostic trace.
// Off by default so the hot path stays silent.
var Verbose = false

func trace(format string, args ...interface{}) {
	if !Verbose {
		return
	}
	io.Pforan(format, args...)
}

// PanicOnErr is for callers that treat ShapeOrderMismatch and
// NegativeJacobian as fatal caller bugs. Never use it for a Newton
// non-convergence, which the classifier always treats as "point not
// inside" and continues past.
func PanicOnErr(err error, msg string) {
	if err != nil {
		utl.Pf("\n")
		panic(utl.Sf("%s: %v", msg, err))
	}
}
