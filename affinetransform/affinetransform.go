// Package affinetransform builds the 4x4 placement matrices used for shapes,
// patterns and cameras.
package affinetransform

import (
	"math"
	"whitted/vmath/matrix"
	"whitted/vmath/vec4"
)

func Identity() matrix.T {
	return matrix.Identity()
}

func Translate(x, y, z float64) matrix.T {
	return matrix.New(4,
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

func Scale(x, y, z float64) matrix.T {
	return matrix.New(4,
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// RotateX rotates by r radians about the x axis.
func RotateX(r float64) matrix.T {
	sin, cos := math.Sincos(r)
	return matrix.New(4,
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	)
}

func RotateY(r float64) matrix.T {
	sin, cos := math.Sincos(r)
	return matrix.New(4,
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	)
}

func RotateZ(r float64) matrix.T {
	sin, cos := math.Sincos(r)
	return matrix.New(4,
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Shear moves each coordinate in proportion to the other two.  xy is the
// amount x moves in proportion to y, and so on.
func Shear(xy, xz, yx, yz, zx, zy float64) matrix.T {
	return matrix.New(4,
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	)
}

// Compose returns the transform that applies b, then a.
func Compose(a, b matrix.T) matrix.T {
	return matrix.MulMM(a, b)
}

// Chain composes transforms in the order they should be applied, so
// Chain(Scale(...), Translate(...)) scales first.
func Chain(ts ...matrix.T) matrix.T {
	result := matrix.Identity()
	for _, t := range ts {
		result = Compose(t, result)
	}
	return result
}

// ViewTransform orients the world relative to an eye at from, looking at to,
// with up roughly pointing up.
func ViewTransform(from, to, up vec4.T) matrix.T {
	forward := vec4.Normalize(vec4.SubVV(to, from))
	left := vec4.CProd(forward, vec4.Normalize(up))
	trueUp := vec4.CProd(left, forward)

	orientation := matrix.New(4,
		left[0], left[1], left[2], 0,
		trueUp[0], trueUp[1], trueUp[2], 0,
		-forward[0], -forward[1], -forward[2], 0,
		0, 0, 0, 1,
	)

	return Compose(orientation, Translate(-from[0], -from[1], -from[2]))
}

// TransformPoint is a convenience for applying a placement to a tuple.
func TransformPoint(m matrix.T, p vec4.T) vec4.T {
	return matrix.MulMV(m, p)
}
