package shape

import (
	"math"
	"whitted/aabox"
	"whitted/ray"
	"whitted/vmath/approx"
	"whitted/vmath/vec4"
)

// Geometry is a primitive in its own model space.  Rays handed to it have
// already been moved into that space.
type Geometry interface {
	// LocalIntersect returns the t value of every crossing of the surface,
	// unsorted.
	LocalIntersect(r ray.Ray) []float64

	// LocalNormalAt returns the outward normal at a point on the surface.  It
	// need not be unit length.
	LocalNormalAt(p vec4.T) vec4.T
}

// Sphere is a Geometry that represents a unit sphere.
type Sphere struct{}

func (s Sphere) LocalIntersect(r ray.Ray) []float64 {
	sphereToRay := vec4.SubVV(r.Point, vec4.Point(0, 0, 0))

	a := vec4.IProd(r.Slope, r.Slope)
	b := 2.0 * vec4.IProd(r.Slope, sphereToRay)
	c := vec4.IProd(sphereToRay, sphereToRay) - 1.0

	discriminant := b*b - 4.0*a*c
	if discriminant < 0 {
		return nil
	}

	root := math.Sqrt(discriminant)
	return []float64{
		(-b - root) / (2.0 * a),
		(-b + root) / (2.0 * a),
	}
}

func (s Sphere) LocalNormalAt(p vec4.T) vec4.T {
	return vec4.SubVV(p, vec4.Point(0, 0, 0))
}

// Plane is the infinite xz plane through the origin.
type Plane struct{}

func (pl Plane) LocalIntersect(r ray.Ray) []float64 {
	if math.Abs(r.Slope[1]) < approx.Epsilon {
		// Parallel or coplanar.
		return nil
	}
	return []float64{-r.Point[1] / r.Slope[1]}
}

func (pl Plane) LocalNormalAt(p vec4.T) vec4.T {
	return vec4.Vector(0, 1, 0)
}

// Cube is the axis-aligned box spanning [-1, 1] on every axis.
type Cube struct{}

func (c Cube) LocalIntersect(r ray.Ray) []float64 {
	cover := aabox.Unit().RayTest(r)
	if cover.IsNaN() {
		return nil
	}
	return []float64{cover.Lo, cover.Hi}
}

// LocalNormalAt picks the face whose axis has the largest coordinate.  Edges
// and corners go to x, then y.
func (c Cube) LocalNormalAt(p vec4.T) vec4.T {
	ax, ay, az := math.Abs(p[0]), math.Abs(p[1]), math.Abs(p[2])
	maxc := math.Max(ax, math.Max(ay, az))

	switch maxc {
	case ax:
		return vec4.Vector(p[0], 0, 0)
	case ay:
		return vec4.Vector(0, p[1], 0)
	default:
		return vec4.Vector(0, 0, p[2])
	}
}
