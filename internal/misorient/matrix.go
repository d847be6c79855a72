package misorient

import (
	"encoding/json"
	"fmt"
	"math"
)

// 3×3 matrix (row-major)
type Mat3 struct {
	M [3][3]Real
}

func I3() Mat3 {
	return Mat3{M: [3][3]Real{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// Mat3FromRows builds a matrix from nested rows, as decoded from JSON.
// Anything other than 3 rows of 3 values is rejected, never padded or truncated.
func Mat3FromRows(rows [][]Real) (Mat3, error) {
	var R Mat3
	if len(rows) != 3 {
		return R, fmt.Errorf("%w: got %d rows", ErrShapeMismatch, len(rows))
	}
	for r, row := range rows {
		if len(row) != 3 {
			return R, fmt.Errorf("%w: row %d has %d columns", ErrShapeMismatch, r, len(row))
		}
		for c, v := range row {
			if !isFinite(v) {
				return R, fmt.Errorf("element (%d,%d) is not finite: %v", r, c, v)
			}
			R.M[r][c] = v
		}
	}
	return R, nil
}

func (A Mat3) Mul(B Mat3) Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

func (A Mat3) Transpose() Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

func (A Mat3) Trace() Real { return A.M[0][0] + A.M[1][1] + A.M[2][2] }

// Det returns the determinant (cofactor expansion along the first row).
func (A Mat3) Det() Real {
	m := &A.M
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// rowNormProduct bounds |det A| from above (Hadamard's inequality).
func (A Mat3) rowNormProduct() Real {
	p := 1.0
	for r := 0; r < 3; r++ {
		p *= math.Sqrt(A.M[r][0]*A.M[r][0] + A.M[r][1]*A.M[r][1] + A.M[r][2]*A.M[r][2])
	}
	return p
}

// Inverse returns A^-1 via the adjugate.
// It fails with ErrSingularMatrix when det A is zero, not finite, or tiny
// relative to the row norms: |det A| <= SingularEps * |r0| |r1| |r2|.
// The test is invariant to scaling A.
func (A Mat3) Inverse() (Mat3, error) {
	det := A.Det()
	if det == 0 || !isFinite(det) || math.Abs(det) <= SingularEps*A.rowNormProduct() {
		return Mat3{}, fmt.Errorf("%w: det=%g", ErrSingularMatrix, det)
	}
	m := &A.M
	inv := 1 / det
	return Mat3{M: [3][3]Real{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv,
		},
	}}, nil
}

// Round rounds every element to n decimals.
func (A Mat3) Round(n int) Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			R.M[r][c] = roundTo(A.M[r][c], n)
		}
	}
	return R
}

// ApproxEqual reports whether all elements differ by at most tol.
func (A Mat3) ApproxEqual(B Mat3, tol Real) bool {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(A.M[r][c]-B.M[r][c]) > tol {
				return false
			}
		}
	}
	return true
}

// MarshalJSON encodes the matrix as [[a, b, c], ...].
func (A Mat3) MarshalJSON() ([]byte, error) { return json.Marshal(A.M) }

func (A *Mat3) UnmarshalJSON(data []byte) error {
	var rows [][]Real
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	m, err := Mat3FromRows(rows)
	if err != nil {
		return err
	}
	*A = m
	return nil
}
