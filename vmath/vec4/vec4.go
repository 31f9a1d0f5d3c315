// Package vec4 implements homogeneous 4-tuples.
//
// The last component tags the tuple: w=1 is a point, w=0 is a vector.  The
// arithmetic below keeps the tag consistent, so subtracting two points gives a
// vector and adding a vector to a point gives a point.
package vec4

import (
	"math"
	"whitted/vmath/approx"
)

type T [4]float64

func Point(x, y, z float64) T {
	return T{x, y, z, 1}
}

func Vector(x, y, z float64) T {
	return T{x, y, z, 0}
}

func (v T) IsPoint() bool {
	return v[3] == 1.0
}

func (v T) IsVector() bool {
	return v[3] == 0.0
}

// Norm is the magnitude of the tuple.  It is only meaningful for vectors.
func (v T) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
}

func Normalize(v T) T {
	l := v.Norm()
	return T{
		v[0] / l,
		v[1] / l,
		v[2] / l,
		v[3] / l,
	}
}

func AddVV(a, b T) T {
	return T{
		a[0] + b[0],
		a[1] + b[1],
		a[2] + b[2],
		a[3] + b[3],
	}
}

func SubVV(a, b T) T {
	return T{
		a[0] - b[0],
		a[1] - b[1],
		a[2] - b[2],
		a[3] - b[3],
	}
}

func Neg(a T) T {
	return T{-a[0], -a[1], -a[2], -a[3]}
}

func MulVS(a T, b float64) T {
	return T{
		a[0] * b,
		a[1] * b,
		a[2] * b,
		a[3] * b,
	}
}

func DivVS(a T, b float64) T {
	return T{
		a[0] / b,
		a[1] / b,
		a[2] / b,
		a[3] / b,
	}
}

func IProd(a, b T) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// CProd is the cross product of the xyz parts.  The result is always a vector.
func CProd(a, b T) T {
	return T{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
		0,
	}
}

// Reflect mirrors a about the normal n.
func Reflect(a, n T) T {
	return SubVV(a, MulVS(n, 2*IProd(a, n)))
}

func Equal(a, b T) bool {
	return approx.Equal(a[0], b[0]) &&
		approx.Equal(a[1], b[1]) &&
		approx.Equal(a[2], b[2]) &&
		approx.Equal(a[3], b[3])
}
