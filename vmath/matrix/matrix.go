// Package matrix implements small square matrices.
//
// Placement transforms are always 4x4.  The 3x3 and 2x2 sizes only show up as
// submatrices while expanding a determinant by cofactors.
package matrix

import (
	"errors"
	"fmt"
	"whitted/vmath/approx"
	"whitted/vmath/vec4"
)

// ErrNotInvertible is returned when inverting a matrix whose determinant is
// exactly zero.
var ErrNotInvertible = errors.New("matrix is not invertible")

// T is a row-major square matrix of side Size (2, 3 or 4).  Only the first
// Size*Size elements of Elts are used.  The zero value has Size 0 and is not a
// usable matrix; Inverse reports it as not invertible and the products panic.
type T struct {
	Size int
	Elts [16]float64
}

// New builds a size x size matrix from row-major elements.  It panics if the
// element count does not match, the same way a bad slice index would.
func New(size int, elts ...float64) T {
	if size < 2 || size > 4 {
		panic(fmt.Sprintf("matrix: unsupported size %d", size))
	}
	if len(elts) != size*size {
		panic(fmt.Sprintf("matrix: got %d elements for a %dx%d matrix", len(elts), size, size))
	}

	m := T{Size: size}
	copy(m.Elts[:], elts)
	return m
}

func Identity() T {
	return New(4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

func (m T) At(r, c int) float64 {
	return m.Elts[r*m.Size+c]
}

// MulMM panics unless a and b are the same supported size.
func MulMM(a, b T) T {
	if a.Size != b.Size || a.Size < 2 || a.Size > 4 {
		panic(fmt.Sprintf("matrix: cannot multiply %dx%d by %dx%d", a.Size, a.Size, b.Size, b.Size))
	}

	result := T{Size: a.Size}
	for i := 0; i < a.Size; i++ {
		for j := 0; j < a.Size; j++ {
			for k := 0; k < a.Size; k++ {
				result.Elts[i*a.Size+j] += a.Elts[i*a.Size+k] * b.Elts[k*b.Size+j]
			}
		}
	}
	return result
}

// MulMV applies a 4x4 matrix to a tuple.  It panics on any other size.
func MulMV(a T, b vec4.T) vec4.T {
	if a.Size != 4 {
		panic(fmt.Sprintf("matrix: cannot apply a %dx%d matrix to a tuple", a.Size, a.Size))
	}

	return vec4.T{
		a.Elts[0]*b[0] + a.Elts[1]*b[1] + a.Elts[2]*b[2] + a.Elts[3]*b[3],
		a.Elts[4]*b[0] + a.Elts[5]*b[1] + a.Elts[6]*b[2] + a.Elts[7]*b[3],
		a.Elts[8]*b[0] + a.Elts[9]*b[1] + a.Elts[10]*b[2] + a.Elts[11]*b[3],
		a.Elts[12]*b[0] + a.Elts[13]*b[1] + a.Elts[14]*b[2] + a.Elts[15]*b[3],
	}
}

func Transpose(m T) T {
	transpose := T{Size: m.Size}
	for r := 0; r < m.Size; r++ {
		for c := 0; c < m.Size; c++ {
			transpose.Elts[c*m.Size+r] = m.Elts[r*m.Size+c]
		}
	}
	return transpose
}

// Submatrix drops one row and one column.
func Submatrix(m T, row, col int) T {
	sub := T{Size: m.Size - 1}
	i := 0
	for r := 0; r < m.Size; r++ {
		if r == row {
			continue
		}
		for c := 0; c < m.Size; c++ {
			if c == col {
				continue
			}
			sub.Elts[i] = m.Elts[r*m.Size+c]
			i++
		}
	}
	return sub
}

func Minor(m T, row, col int) float64 {
	return Determinant(Submatrix(m, row, col))
}

func Cofactor(m T, row, col int) float64 {
	minor := Minor(m, row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant expands along row 0.  Matrices are at most 4x4, so the
// recursion stays shallow.
func Determinant(m T) float64 {
	if m.Size == 2 {
		return m.Elts[0]*m.Elts[3] - m.Elts[1]*m.Elts[2]
	}

	det := 0.0
	for c := 0; c < m.Size; c++ {
		det += m.Elts[c] * Cofactor(m, 0, c)
	}
	return det
}

// Inverse computes the adjugate divided by the determinant.
func Inverse(m T) (T, error) {
	det := Determinant(m)
	if det == 0 {
		return T{}, ErrNotInvertible
	}

	inv := T{Size: m.Size}
	for r := 0; r < m.Size; r++ {
		for c := 0; c < m.Size; c++ {
			// Writing to [c, r] transposes the cofactor matrix in place.
			inv.Elts[c*m.Size+r] = Cofactor(m, r, c) / det
		}
	}
	return inv, nil
}

func Equal(a, b T) bool {
	if a.Size != b.Size {
		return false
	}
	for i := 0; i < a.Size*a.Size; i++ {
		if !approx.Equal(a.Elts[i], b.Elts[i]) {
			return false
		}
	}
	return true
}
