package ray

import (
	"math"
	"whitted/vmath/matrix"
	"whitted/vmath/vec4"
)

type Span struct {
	Lo, Hi float64
}

func NaNSpan() Span {
	return Span{math.NaN(), math.NaN()}
}

func (s Span) IsNaN() bool {
	return math.IsNaN(s.Lo) || math.IsNaN(s.Hi)
}

// Intersect narrows a to the part it shares with b.  The result is NaN if the
// spans are disjoint.
func Intersect(a, b Span) Span {
	result := a
	if b.Lo > result.Lo {
		result.Lo = b.Lo
	}
	if b.Hi < result.Hi {
		result.Hi = b.Hi
	}
	if result.Lo > result.Hi {
		return NaNSpan()
	}
	return result
}

// Ray is a half-line starting at Point.  Slope need not be unit length.
type Ray struct {
	Point vec4.T
	Slope vec4.T
}

func New(point, slope vec4.T) Ray {
	return Ray{Point: point, Slope: slope}
}

// Eval returns the position at parameter t along the ray.
func (r Ray) Eval(t float64) vec4.T {
	return vec4.AddVV(r.Point, vec4.MulVS(r.Slope, t))
}

// Transform maps the ray into another space.  The slope keeps whatever length
// the transform gives it, so t values found in the new space are valid in the
// old one.
func (r Ray) Transform(m matrix.T) Ray {
	return Ray{
		Point: matrix.MulMV(m, r.Point),
		Slope: matrix.MulMV(m, r.Slope),
	}
}
