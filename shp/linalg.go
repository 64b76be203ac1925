// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Det2 and Adj2 give the closed-form determinant and adjoint of a 2x2
// matrix, row-major.
func Det2(M [][]float64) float64 {
	return M[0][0]*M[1][1] - M[0][1]*M[1][0]
}

func Adj2(M [][]float64) [][]float64 {
	return [][]float64{
		{M[1][1], -M[0][1]},
		{-M[1][0], M[0][0]},
	}
}

// Det3 and Adj3 give the closed-form determinant and adjoint of a 3x3
// matrix, row-major. Adj3(M) is the transpose of the cofactor matrix:
// Adj3(M)·M = Det3(M)·I.
func Det3(M [][]float64) float64 {
	return M[0][0]*(M[1][1]*M[2][2]-M[1][2]*M[2][1]) -
		M[0][1]*(M[1][0]*M[2][2]-M[1][2]*M[2][0]) +
		M[0][2]*(M[1][0]*M[2][1]-M[1][1]*M[2][0])
}

func Adj3(M [][]float64) [][]float64 {
	return [][]float64{
		{
			M[1][1]*M[2][2] - M[1][2]*M[2][1],
			M[0][2]*M[2][1] - M[0][1]*M[2][2],
			M[0][1]*M[1][2] - M[0][2]*M[1][1],
		},
		{
			M[1][2]*M[2][0] - M[1][0]*M[2][2],
			M[0][0]*M[2][2] - M[0][2]*M[2][0],
			M[0][2]*M[1][0] - M[0][0]*M[1][2],
		},
		{
			M[1][0]*M[2][1] - M[1][1]*M[2][0],
			M[0][1]*M[2][0] - M[0][0]*M[2][1],
			M[0][0]*M[1][1] - M[0][1]*M[1][0],
		},
	}
}

// Det4 and Adj4 give the closed-form determinant and adjoint of a 4x4
// matrix, row-major, by cofactor expansion along row 0.
func Det4(M [][]float64) float64 {
	var det float64
	for j := 0; j < 4; j++ {
		det += sign(j) * M[0][j] * minor4(M, 0, j)
	}
	return det
}

func Adj4(M [][]float64) [][]float64 {
	cof := make([][]float64, 4)
	for i := 0; i < 4; i++ {
		cof[i] = make([]float64, 4)
		for j := 0; j < 4; j++ {
			cof[i][j] = sign(i+j) * minor4(M, i, j)
		}
	}
	return transpose(cof)
}

// minor4 returns the determinant of the 3x3 minor of M obtained by
// deleting row ri and column cj.
func minor4(M [][]float64, ri, cj int) float64 {
	var sub [3][3]float64
	a, b := 0, 0
	for i := 0; i < 4; i++ {
		if i == ri {
			continue
		}
		b = 0
		for j := 0; j < 4; j++ {
			if j == cj {
				continue
			}
			sub[a][b] = M[i][j]
			b++
		}
		a++
	}
	subSlice := [][]float64{sub[0][:], sub[1][:], sub[2][:]}
	return Det3(subSlice)
}

func sign(k int) float64 {
	if k%2 == 0 {
		return 1
	}
	return -1
}

func transpose(M [][]float64) [][]float64 {
	n := len(M)
	T := make([][]float64, n)
	for i := range T {
		T[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			T[j][i] = M[i][j]
		}
	}
	return T
}

// Determinant is the generic recursive determinant: falls through to
// the closed-form routines for size <= 4 and uses cofactor expansion
// along column 0 for larger sizes. Must never be called with size == 0.
func Determinant(M [][]float64) float64 {
	n := len(M)
	switch n {
	case 1:
		return M[0][0]
	case 2:
		return Det2(M)
	case 3:
		return Det3(M)
	case 4:
		return Det4(M)
	}
	var det float64
	for i := 0; i < n; i++ {
		minor := make([][]float64, n-1)
		a := 0
		for r := 0; r < n; r++ {
			if r == i {
				continue
			}
			minor[a] = M[r][1:]
			a++
		}
		det += sign(i) * M[i][0] * Determinant(minor)
	}
	return det
}

// Adjoint computes the adjoint of M at general size by minor/cofactor
// expansion with alternating signs; it is the transpose of the cofactor
// matrix, so Adjoint(M)·M = Determinant(M)·I.
func Adjoint(M [][]float64) [][]float64 {
	n := len(M)
	switch n {
	case 2:
		return Adj2(M)
	case 3:
		return Adj3(M)
	case 4:
		return Adj4(M)
	}
	cof := make([][]float64, n)
	for i := 0; i < n; i++ {
		cof[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			minor := make([][]float64, n-1)
			a := 0
			for r := 0; r < n; r++ {
				if r == i {
					continue
				}
				row := make([]float64, 0, n-1)
				for c := 0; c < n; c++ {
					if c == j {
						continue
					}
					row = append(row, M[r][c])
				}
				minor[a] = row
				a++
			}
			cof[i][j] = sign(i+j) * Determinant(minor)
		}
	}
	return transpose(cof)
}
