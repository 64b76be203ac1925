// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// BoundingBox scans n points of dimension d (points[p][dim]) and returns
// elementwise min/max.
func BoundingBox(points [][]float64, n, d int) (min, max []float64) {
	min = make([]float64, d)
	max = make([]float64, d)
	for i := 0; i < d; i++ {
		min[i] = math.Inf(1)
		max[i] = math.Inf(-1)
	}
	for p := 0; p < n; p++ {
		for i := 0; i < d; i++ {
			if points[p][i] < min[i] {
				min[i] = points[p][i]
			}
			if points[p][i] > max[i] {
				max[i] = points[p][i]
			}
		}
	}
	return
}

// BoundingBoxTransformed applies a row-major d×d matrix to each point
// before scanning for min/max; used when a mesh has been rigidly moved.
func BoundingBoxTransformed(points [][]float64, n, d int, T [][]float64) (min, max []float64) {
	tp := la.MatAlloc(n, d)
	for p := 0; p < n; p++ {
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				tp[p][i] += T[i][j] * points[p][j]
			}
		}
	}
	return BoundingBox(tp, n, d)
}

// FaceNormal3D returns the outward unit normal of a 4-vertex quad facet,
// vertices assumed CCW as seen from outside: the average of the cross
// products of the first and second triangles of the quad.
func FaceNormal3D(v0, v1, v2, v3 []float64) []float64 {
	n1 := cross(sub(v1, v0), sub(v2, v0))
	n2 := cross(sub(v2, v0), sub(v3, v0))
	n := []float64{n1[0] + n2[0], n1[1] + n2[1], n1[2] + n2[2]}
	return normalize(n)
}

// FaceNormal2D returns the outward unit normal of a 2-D segment
// (p2-p1), rotated 90 degrees counter-clockwise.
func FaceNormal2D(p1, p2 []float64) []float64 {
	d := []float64{p2[0] - p1[0], p2[1] - p1[1]}
	n := []float64{-d[1], d[0]}
	len_ := math.Hypot(n[0], n[1])
	if len_ == 0 {
		return []float64{0, 0}
	}
	return []float64{n[0] / len_, n[1] / len_}
}

func sub(a, b []float64) []float64 { return []float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v []float64) []float64 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n == 0 {
		return v
	}
	return []float64{v[0] / n, v[1] / n, v[2] / n}
}
