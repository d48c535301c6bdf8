// SPDX-License-Identifier: MIT

// Package matrix - Gaussian elimination & numeric rank.
//
// Purpose:
//   - Reduce a matrix to row-echelon form with scaled partial pivoting.
//   - Count the pivots whose magnitude exceeds an explicit threshold.
//
// Contract:
//   - The input is never mutated; elimination runs on a square zero-padded copy.
//   - A column whose best pivot is within the threshold is skipped, and the
//     pivot row stays where it is.
//   - The number of pivots equals the number of rows of the echelon form that
//     hold at least one entry above the threshold.

package matrix

import (
	"math"
)

const (
	opUpperTriangular = "UpperTriangular"
	opRank            = "Rank"
)

// UpperTriangular returns the row-echelon form of m as a new square Dense
// of side max(Rows, Cols), the missing rows or columns padded with zeros.
//
// Implementation:
//   - Stage 1: copy m into an n×n buffer, n = max(rows, cols).
//   - Stage 2: for each column c and the current pivot row r, pick the row
//     z ≥ r maximizing |a[z][c]| / Σ_k≥c |a[z][k]| (rows with a zero sum are
//     ignored) and swap it into r.
//   - Stage 3: if |a[r][c]| ≤ pivotZero the column is skipped; otherwise all
//     rows below r are eliminated in column c and r advances.
//
// Inputs:
//   - m: source matrix (not modified).
//   - pivotZero: finite, non-negative threshold under which a pivot counts as zero.
//
// Returns:
//   - *Dense: echelon form.
//   - int: number of pivots (the numeric rank).
//
// Errors:
//   - ErrNilMatrix, ErrNegativeThreshold, ErrNaNInf (wrapped with the op tag).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func UpperTriangular(m Matrix, pivotZero float64) (*Dense, int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, 0, matrixErrorf(opUpperTriangular, err)
	}
	if err := ValidateThreshold(pivotZero); err != nil {
		return nil, 0, matrixErrorf(opUpperTriangular, err)
	}

	rows, cols := m.Rows(), m.Cols()
	n := rows
	if cols > n {
		n = cols
	}
	a, err := NewDense(n, n)
	if err != nil {
		return nil, 0, matrixErrorf(opUpperTriangular, err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, 0, matrixErrorf(opUpperTriangular, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, 0, matrixErrorf(opUpperTriangular, denseErrorf(ctxAt, i, j, ErrNaNInf))
			}
			a.data[i*n+j] = v
		}
	}

	pivots := eliminate(a.data, n, pivotZero)

	return a, pivots, nil
}

// Rank returns the numeric rank of m against pivotZero.
// See UpperTriangular for the elimination contract.
//
// pivotZero is absolute. When m has many more rows than its true rank, the
// rounding left in eliminated rows grows with the row count and can exceed
// the threshold, so the rank is overcounted. Hull construction only ranks
// d or d+1 points of a d-dimensional set, where the leftover stays far
// below it.
func Rank(m Matrix, pivotZero float64) (int, error) {
	_, r, err := UpperTriangular(m, pivotZero)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return r, nil
}

// eliminate runs the in-place forward elimination on the n×n row-major
// buffer and returns the pivot count.
func eliminate(a []float64, n int, pivotZero float64) int {
	r := 0
	for c := 0; c < n && r < n; c++ {
		best, bestScore := -1, -1.0
		for z := r; z < n; z++ {
			s := 0.0
			for k := c; k < n; k++ {
				s += math.Abs(a[z*n+k])
			}
			if s == 0 {
				continue
			}
			if score := math.Abs(a[z*n+c]) / s; score > bestScore {
				best, bestScore = z, score
			}
		}
		if best < 0 {
			continue
		}
		if best != r {
			swapRows(a, n, r, best)
		}
		p := a[r*n+c]
		if math.Abs(p) <= pivotZero {
			continue
		}
		for z := r + 1; z < n; z++ {
			f := a[z*n+c] / p
			if f == 0 {
				continue
			}
			a[z*n+c] = 0
			for k := c + 1; k < n; k++ {
				a[z*n+k] -= f * a[r*n+k]
			}
		}
		r++
	}

	return r
}

// swapRows exchanges rows i and j of the n-column buffer.
func swapRows(a []float64, n, i, j int) {
	ri := a[i*n : (i+1)*n]
	rj := a[j*n : (j+1)*n]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
