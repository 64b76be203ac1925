// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "math"

// Triangle is three vertices in physical space.
type Triangle [3]Vec3

// edges returns the three edges of the triangle as (start,end) pairs,
// in vertex order 0-1, 1-2, 2-0.
func (t Triangle) edges() [3][2]Vec3 {
	return [3][2]Vec3{{t[0], t[1]}, {t[1], t[2]}, {t[2], t[0]}}
}

// plane returns the (unit normal, signed offset) of the triangle's
// supporting plane: normal.Dot(x) == d for any point x on the plane.
func (t Triangle) plane() (normal Vec3, d float64) {
	normal = t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Normalized()
	d = normal.Dot(t[0])
	return
}

// signedDistances returns the signed distance of each vertex of t to the
// plane (normal,d), with magnitudes below 1e-10 rounded to exactly 0.
func signedDistances(t Triangle, normal Vec3, d float64) [3]float64 {
	var out [3]float64
	for i, v := range t {
		dist := normal.Dot(v) - d
		if math.Abs(dist) < 1e-10 {
			dist = 0
		}
		out[i] = dist
	}
	return out
}

// TriTriDistance computes the minimum distance between two triangles
// (modified Möller algorithm). distance >= 0; when positive,
// separation points from t1 toward t2 (separation = p_on_t2 - p_on_t1).
func TriTriDistance(t1, t2 Triangle, tol float64) (distance float64, separation Vec3) {

	// step 1: nine pairwise edge-edge minimum distances
	e1 := t1.edges()
	e2 := t2.edges()
	best := math.Inf(1)
	var bestC1, bestC2 Vec3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d, c1, c2 := SegmentDistance(e1[i][0], e1[i][1], e2[j][0], e2[j][1])
			if d < best {
				best, bestC1, bestC2 = d, c1, c2
			}
		}
	}
	if best <= tol {
		return 0, Vec3{}
	}

	// step 2: plane tests
	n1, d1 := t1.plane()
	n2, d2 := t2.plane()
	sd1 := signedDistances(t1, n2, d2) // t1 verts against plane 2
	sd2 := signedDistances(t2, n1, d1) // t2 verts against plane 1

	// step 3: coplanar branch
	if sd1[0] == 0 && sd1[1] == 0 && sd1[2] == 0 &&
		sd2[0] == 0 && sd2[1] == 0 && sd2[2] == 0 {
		for i := 0; i < 3; i++ {
			if pointInTriangle(t1[i], t2, n2) || pointInTriangle(t2[i], t1, n1) {
				return 0, Vec3{}
			}
		}
		// coplanar, non-overlapping: fall through, edge-edge distance already has the answer
		return best, bestC2.Sub(bestC1)
	}

	sameSign1 := sameSign(sd1[0], sd1[1], sd1[2])
	sameSign2 := sameSign(sd2[0], sd2[1], sd2[2])

	// steps 4-5: no-crossing branches
	if sameSign1 {
		if d, sep, ok := projectedCandidate(t1, n1, t2, n2, d2, sd1); ok && d < best {
			best, bestC1, bestC2 = d, sep[0], sep[1]
		}
	}
	if sameSign2 {
		if d, sep, ok := projectedCandidate(t2, n2, t1, n1, d1, sd2); ok && d < best {
			best = d
			bestC1, bestC2 = sep[1], sep[0]
		}
	}
	if sameSign1 || sameSign2 {
		return best, bestC2.Sub(bestC1)
	}

	// step 6: piercing branch. both triangles straddle each other's plane.
	L := n1.Cross(n2)
	if L.Norm() < 1e-14 {
		// planes (nearly) parallel but not coplanar and not same-side: no intersection found analytically
		return best, bestC2.Sub(bestC1)
	}
	s1, s2, ok1 := intervalOnLine(t1, sd1, L)
	t1v, t2v, ok2 := intervalOnLine(t2, sd2, L)
	if !ok1 || !ok2 {
		return best, bestC2.Sub(bestC1)
	}
	if s1 > s2 {
		s1, s2 = s2, s1
	}
	if t1v > t2v {
		t1v, t2v = t2v, t1v
	}
	if s1 <= t2v && t1v <= s2 {
		return 0, Vec3{}
	}
	var gap float64
	if t2v < s1 {
		gap = s1 - t2v
	} else {
		gap = t1v - s2
	}
	// the interval ends are dot products with the unnormalized L, so
	// their gap is |L| times the length along the line
	dist := gap / L.Norm()
	if dist < best {
		return dist, L.Normalized().Scale(sign(s1, t1v) * dist)
	}
	return best, bestC2.Sub(bestC1)
}

func sign(s1, t1v float64) float64 {
	if t1v < s1 {
		return -1
	}
	return 1
}

// sameSign reports that no two signed distances strictly straddle the
// plane. A rounded-to-zero distance counts as either side, so a vertex
// resting exactly on the plane still takes the projected-candidate path
// (which yields distance 0 when the projection lands inside).
func sameSign(a, b, c float64) bool {
	pos, neg := 0, 0
	for _, v := range []float64{a, b, c} {
		if v > 0 {
			pos++
		} else if v < 0 {
			neg++
		}
	}
	return pos == 0 || neg == 0
}

// pointInTriangle tests (assuming p is coplanar with tri, normal n) if p
// lies inside tri via three consistent-sign cross-product tests.
func pointInTriangle(p Vec3, tri Triangle, n Vec3) bool {
	var signs [3]float64
	for i := 0; i < 3; i++ {
		a, b := tri[i], tri[(i+1)%3]
		edge := b.Sub(a)
		toP := p.Sub(a)
		signs[i] = n.Dot(edge.Cross(toP))
	}
	hasPos, hasNeg := false, false
	for _, v := range signs {
		if v > 1e-12 {
			hasPos = true
		} else if v < -1e-12 {
			hasNeg = true
		}
	}
	return !(hasPos && hasNeg)
}

// projectedCandidate handles the no-crossing case: when no two of tri's
// vertices lie strictly on opposite sides of other's plane (a vertex on
// the plane counts as either side), project each
// vertex of tri onto the other's plane; if the projection falls inside
// other, |signed distance| is a candidate minimum distance.
func projectedCandidate(tri Triangle, n Vec3, other Triangle, nOther Vec3, dOther float64, sd [3]float64) (dist float64, pts [2]Vec3, ok bool) {
	best := math.Inf(1)
	var bestP, bestProj Vec3
	found := false
	for i := 0; i < 3; i++ {
		proj := tri[i].Sub(nOther.Scale(sd[i]))
		if pointInTriangle(proj, other, nOther) {
			d := math.Abs(sd[i])
			if d < best {
				best, bestP, bestProj, found = d, tri[i], proj, true
			}
		}
	}
	if !found {
		return 0, pts, false
	}
	return best, [2]Vec3{bestP, bestProj}, true
}

// intervalOnLine computes the [smin,smax] interval where tri's
// intersection with the other triangle's plane projects onto line L,
// by linearly interpolating along the two edges that straddle the
// plane (sd holds tri's signed distances to that plane).
func intervalOnLine(tri Triangle, sd [3]float64, L Vec3) (smin, smax float64, ok bool) {
	var params []float64
	verts := [3]Vec3{tri[0], tri[1], tri[2]}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		if (sd[i] > 0 && sd[j] < 0) || (sd[i] < 0 && sd[j] > 0) {
			frac := sd[i] / (sd[i] - sd[j])
			p := verts[i].Add(verts[j].Sub(verts[i]).Scale(frac))
			params = append(params, p.Dot(L))
		} else if sd[i] == 0 {
			params = append(params, verts[i].Dot(L))
		}
	}
	if len(params) < 2 {
		return 0, 0, false
	}
	smin, smax = params[0], params[1]
	if smin > smax {
		smin, smax = smax, smin
	}
	return smin, smax, true
}
