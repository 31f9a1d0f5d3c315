package aabox

import (
	"math"
	"whitted/ray"
	"whitted/vmath/approx"
)

type AABox struct {
	X, Y, Z ray.Span
}

// Unit is the box spanning [-1, 1] on every axis.
func Unit() AABox {
	return AABox{
		X: ray.Span{Lo: -1.0, Hi: 1.0},
		Y: ray.Span{Lo: -1.0, Hi: 1.0},
		Z: ray.Span{Lo: -1.0, Hi: 1.0},
	}
}

// slab computes the range of t for which the ray lies between lo and hi on a
// single axis.
//
// A slope component within epsilon of zero means the ray never crosses the
// slab boundaries.  The slab is then either everything (the origin lies inside
// it) or nothing.
func slab(lo, hi, point, slope float64) ray.Span {
	if math.Abs(slope) < approx.Epsilon {
		if lo <= point && point <= hi {
			return ray.Span{Lo: math.Inf(-1), Hi: math.Inf(1)}
		}
		return ray.Span{Lo: math.Inf(1), Hi: math.Inf(-1)}
	}

	cur := ray.Span{
		Lo: (lo - point) / slope,
		Hi: (hi - point) / slope,
	}
	if cur.Hi < cur.Lo {
		cur.Lo, cur.Hi = cur.Hi, cur.Lo
	}
	return cur
}

// RayTest returns the span of t over which r is inside the box, or a NaN span
// if r misses it.  The span may start behind the ray origin.
func (b AABox) RayTest(r ray.Ray) ray.Span {
	cover := ray.Span{Lo: math.Inf(-1), Hi: math.Inf(1)}

	axes := [3]ray.Span{b.X, b.Y, b.Z}
	for i, axis := range axes {
		cover = ray.Intersect(cover, slab(axis.Lo, axis.Hi, r.Point[i], r.Slope[i]))
		if cover.IsNaN() {
			return ray.NaNSpan()
		}
	}

	return cover
}
