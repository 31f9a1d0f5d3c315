// Package rgb implements linear colors.  Components are nominally in [0, 1]
// but nothing clamps them.
package rgb

import "whitted/vmath/approx"

type T [3]float64

func Black() T {
	return T{0, 0, 0}
}

func White() T {
	return T{1, 1, 1}
}

func AddCC(a, b T) T {
	return T{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func SubCC(a, b T) T {
	return T{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func MulCS(a T, b float64) T {
	return T{a[0] * b, a[1] * b, a[2] * b}
}

// MulCC blends two colors component-wise.
func MulCC(a, b T) T {
	return T{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Lerp moves from a towards b by t.
func Lerp(a, b T, t float64) T {
	return AddCC(a, MulCS(SubCC(b, a), t))
}

func Equal(a, b T) bool {
	return approx.Equal(a[0], b[0]) &&
		approx.Equal(a[1], b[1]) &&
		approx.Equal(a[2], b[2])
}
