// Package pattern implements procedural surface colors.
//
// A pattern is evaluated in its own space.  Callers holding a point in object
// space go through ColorAtObject, which applies the inverse of the pattern's
// transform first.
package pattern

import (
	"fmt"
	"math"
	"whitted/rgb"
	"whitted/vmath/matrix"
	"whitted/vmath/vec4"
)

type Kind int

const (
	KindSolid Kind = iota
	KindStripe
	KindGradient
	KindRing
	KindCheckers
	KindTest
)

func (k Kind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindStripe:
		return "stripe"
	case KindGradient:
		return "gradient"
	case KindRing:
		return "ring"
	case KindCheckers:
		return "checkers"
	case KindTest:
		return "test"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Pattern struct {
	Kind Kind

	// A and B are the two colors the rule chooses between.  Solid only uses A.
	A, B rgb.T

	// The transform that takes pattern space to object space.
	Transform matrix.T
}

func Solid(c rgb.T) Pattern {
	return Pattern{Kind: KindSolid, A: c, B: c, Transform: matrix.Identity()}
}

// Stripe alternates between a and b along x, switching at every integer.
func Stripe(a, b rgb.T) Pattern {
	return Pattern{Kind: KindStripe, A: a, B: b, Transform: matrix.Identity()}
}

// Gradient blends from a to b across each unit interval of x.
func Gradient(a, b rgb.T) Pattern {
	return Pattern{Kind: KindGradient, A: a, B: b, Transform: matrix.Identity()}
}

// Ring alternates between a and b on unit-width circles around the y axis.
func Ring(a, b rgb.T) Pattern {
	return Pattern{Kind: KindRing, A: a, B: b, Transform: matrix.Identity()}
}

func Checkers(a, b rgb.T) Pattern {
	return Pattern{Kind: KindCheckers, A: a, B: b, Transform: matrix.Identity()}
}

// Test colors each point with its own coordinates.
func Test() Pattern {
	return Pattern{Kind: KindTest, Transform: matrix.Identity()}
}

func isEven(f float64) bool {
	return math.Mod(f, 2.0) == 0.0
}

// ColorAt evaluates the pattern rule at a point in pattern space.
func (p Pattern) ColorAt(point vec4.T) rgb.T {
	switch p.Kind {
	case KindSolid:
		return p.A
	case KindStripe:
		if isEven(math.Floor(point[0])) {
			return p.A
		}
		return p.B
	case KindGradient:
		return rgb.Lerp(p.A, p.B, point[0]-math.Floor(point[0]))
	case KindRing:
		if isEven(math.Floor(math.Sqrt(point[0]*point[0] + point[2]*point[2]))) {
			return p.A
		}
		return p.B
	case KindCheckers:
		if isEven(math.Floor(point[0]) + math.Floor(point[1]) + math.Floor(point[2])) {
			return p.A
		}
		return p.B
	case KindTest:
		return rgb.T{point[0], point[1], point[2]}
	default:
		panic(fmt.Sprintf("pattern: unknown kind %v", p.Kind))
	}
}

// IsUniform reports whether the pattern gives the same color everywhere, in
// which case its transform is never consulted.
func (p Pattern) IsUniform() bool {
	return p.Kind == KindSolid
}

// ColorAtObject evaluates the pattern at a point in the owning object's
// space.
func (p Pattern) ColorAtObject(objectPoint vec4.T) (rgb.T, error) {
	if p.IsUniform() {
		return p.A, nil
	}

	objectToPattern, err := matrix.Inverse(p.Transform)
	if err != nil {
		return rgb.T{}, fmt.Errorf("while inverting %v pattern transform: %w", p.Kind, err)
	}
	return p.ColorAt(matrix.MulMV(objectToPattern, objectPoint)), nil
}
