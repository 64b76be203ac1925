// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optimize implements a constrained Nelder-Mead direct-search
// optimizer, used as a fallback to confirm whether a face surface
// penetrates a curved element when the Newton reference-coord solver
// (package refloc) does not converge cleanly.
package optimize

import "math"

// tolerances and coefficients
const (
	NM_TOL      = 2.0e-8
	NM_ITERMAX  = 200
	NM_REFLECT  = 1.0
	NM_EXPAND   = 2.0
	NM_CONTRACT = 0.5
	NM_SHRINK   = 0.5
)

// ObjectiveFunc maps a point to a barrier-augmented objective value.
type ObjectiveFunc func(x []float64) float64

// Constraint returns a positive value when x is infeasible (|ref|>1)
// and -1 otherwise.
type Constraint func(x []float64) float64

// Barrier composes obj and the external constraint: when constraint(x)
// is positive, the objective is replaced by the constraint violation
// itself, which pushes the simplex back toward the feasible region. An
// infeasible point whose violation is smaller than the values of the
// current simplex can still be accepted.
func Barrier(obj ObjectiveFunc, c Constraint) ObjectiveFunc {
	return func(x []float64) float64 {
		if v := c(x); v > 0 {
			return v
		}
		return obj(x)
	}
}

// NelderMead runs the constrained Nelder-Mead search in dimension
// d in {1,2}, starting from the regular simplex of edge length 0.75
// (d==2) or 0.3 (d==1) centered on the origin. Returns the best point
// found and its objective value.
func NelderMead(f ObjectiveFunc, d int) (best []float64, value float64) {
	simplex := initialSimplex(d)
	vals := make([]float64, len(simplex))
	for i, p := range simplex {
		vals[i] = f(p)
	}

	for iter := 0; iter < NM_ITERMAX; iter++ {
		sortSimplex(simplex, vals)
		if vals[0] < NM_TOL {
			break
		}

		centroid := centroidExcept(simplex, len(simplex)-1)
		worst := simplex[len(simplex)-1]

		reflected := moveTowards(centroid, worst, -NM_REFLECT)
		reflectedVal := f(reflected)

		switch {
		case reflectedVal < vals[0]:
			expanded := moveTowards(centroid, worst, -NM_EXPAND)
			expandedVal := f(expanded)
			if expandedVal < reflectedVal {
				simplex[len(simplex)-1], vals[len(simplex)-1] = expanded, expandedVal
			} else {
				simplex[len(simplex)-1], vals[len(simplex)-1] = reflected, reflectedVal
			}
		case reflectedVal < vals[len(vals)-2]:
			simplex[len(simplex)-1], vals[len(simplex)-1] = reflected, reflectedVal
		default:
			contracted := moveTowards(centroid, worst, NM_CONTRACT)
			contractedVal := f(contracted)
			if contractedVal < vals[len(vals)-1] {
				simplex[len(simplex)-1], vals[len(simplex)-1] = contracted, contractedVal
			} else {
				shrinkSimplex(simplex, vals, f)
			}
		}
	}

	sortSimplex(simplex, vals)
	return simplex[0], vals[0]
}

func initialSimplex(d int) [][]float64 {
	edge := 0.75
	if d == 1 {
		edge = 0.3
	}
	simplex := make([][]float64, d+1)
	simplex[0] = make([]float64, d)
	for i := 0; i < d; i++ {
		p := make([]float64, d)
		p[i] = edge
		simplex[i+1] = p
	}
	if d == 2 {
		// apex of the equilateral triangle on the first edge
		simplex[2][0] = edge / 2
		simplex[2][1] = edge * math.Sqrt(3) / 2
	}
	// recenter on the origin (the regular simplex's centroid)
	c := centroidExcept(simplex, -1)
	for i := range simplex {
		simplex[i] = vecSub(simplex[i], c)
	}
	return simplex
}

func centroidExcept(simplex [][]float64, except int) []float64 {
	d := len(simplex[0])
	c := make([]float64, d)
	n := 0
	for i, p := range simplex {
		if i == except {
			continue
		}
		for j := 0; j < d; j++ {
			c[j] += p[j]
		}
		n++
	}
	for j := 0; j < d; j++ {
		c[j] /= float64(n)
	}
	return c
}

// moveTowards returns centroid + coeff*(worst-centroid).
func moveTowards(centroid, worst []float64, coeff float64) []float64 {
	out := make([]float64, len(centroid))
	for i := range out {
		out[i] = centroid[i] + coeff*(worst[i]-centroid[i])
	}
	return out
}

func vecSub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func shrinkSimplex(simplex [][]float64, vals []float64, f ObjectiveFunc) {
	best := simplex[0]
	for i := 1; i < len(simplex); i++ {
		for j := range simplex[i] {
			simplex[i][j] = best[j] + NM_SHRINK*(simplex[i][j]-best[j])
		}
		vals[i] = f(simplex[i])
	}
}

func sortSimplex(simplex [][]float64, vals []float64) {
	// simple insertion sort: simplex sizes are 2 or 3, never worth a
	// generic sort.Interface implementation.
	for i := 1; i < len(vals); i++ {
		for j := i; j > 0 && vals[j] < vals[j-1]; j-- {
			simplex[j], simplex[j-1] = simplex[j-1], simplex[j]
			vals[j], vals[j-1] = vals[j-1], vals[j]
		}
	}
}

// BarrierObjective builds the penetration-confirmation objective: it
// maps a search point to reference coordinates through toRST and
// returns max|rst|-1 when that point leaves [-1,1]^d, else 0. Driving
// this to zero means the search point lands inside the element.
func BarrierObjective(toRST func(x []float64) []float64) ObjectiveFunc {
	return func(x []float64) float64 {
		rst := toRST(x)
		m := 0.0
		for _, v := range rst {
			if math.Abs(v) > m {
				m = math.Abs(v)
			}
		}
		if m > 1 {
			return m - 1
		}
		return 0
	}
}

// SimpleConstraint builds a Constraint directly from toRST: positive
// when |ref|>1, else -1.
func SimpleConstraint(toRST func(x []float64) []float64) Constraint {
	return func(x []float64) float64 {
		rst := toRST(x)
		m := 0.0
		for _, v := range rst {
			if math.Abs(v) > m {
				m = math.Abs(v)
			}
		}
		if m > 1 {
			return m - 1
		}
		return -1
	}
}
