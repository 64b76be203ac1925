// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo implements the minimum-distance geometric kernel used by
// the direct-cut classifier: triangle-triangle separation with coplanar
// handling, and the line-segment distance it builds on.
package geo

import "math"

// Vec3 is a position or a vector in 3-D; value-typed, copied freely, no
// units attached.
type Vec3 struct {
	X, Y, Z float64
}

func NewVec3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(k float64) Vec3 { return Vec3{a.X * k, a.Y * k, a.Z * k} }

func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Norm() float64 { return math.Sqrt(a.Dot(a)) }

// Normalized returns a unit vector parallel to a, or the zero vector if
// a is (numerically) zero.
func (a Vec3) Normalized() Vec3 {
	n := a.Norm()
	if n == 0 {
		return Vec3{}
	}
	return a.Scale(1 / n)
}

// FromSlice builds a Vec3 from a 3-element []float64.
func FromSlice(p []float64) Vec3 { return Vec3{p[0], p[1], p[2]} }

func (a Vec3) Slice() []float64 { return []float64{a.X, a.Y, a.Z} }
