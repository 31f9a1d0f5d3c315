// Package intersection selects hits among ray crossings and prepares them for
// shading.
package intersection

import (
	"fmt"
	"math"
	"sort"
	"whitted/ray"
	"whitted/shape"
	"whitted/vmath/approx"
	"whitted/vmath/vec4"
)

// Intersection is a crossing of a ray with the object at index Object in the
// scene's object list.
type Intersection struct {
	T      float64
	Object int
}

// Equal reports whether a and b are the same crossing of the same object.
func (a Intersection) Equal(b Intersection) bool {
	return a.Object == b.Object && approx.Equal(a.T, b.T)
}

type List []Intersection

// Sort orders the list by increasing t.
func (l List) Sort() {
	sort.Slice(l, func(i, j int) bool { return l[i].T < l[j].T })
}

// Hit returns the crossing with the smallest non-negative t.  Crossings
// behind the ray origin never count.
func (l List) Hit() (Intersection, bool) {
	best := -1
	for i, x := range l {
		if x.T < 0 {
			continue
		}
		if best == -1 || x.T < l[best].T {
			best = i
		}
	}
	if best == -1 {
		return Intersection{}, false
	}
	return l[best], true
}

// Computed holds the geometry of a hit that shading needs.
type Computed struct {
	T      float64
	Object int

	Point  vec4.T
	Eye    vec4.T
	Normal vec4.T

	// Reflect is the incoming direction mirrored about Normal.
	Reflect vec4.T

	// OverPoint and UnderPoint are Point nudged just above and just below the
	// surface.  Secondary rays start from them so they do not hit the
	// surface they are leaving.
	OverPoint  vec4.T
	UnderPoint vec4.T

	// Inside is set when the ray hit the surface from within the object.
	// Normal has been flipped to face the eye.
	Inside bool

	// Refractive indices of the media the ray leaves and enters.
	N1, N2 float64
}

// Prepare computes the shading state for hit, which must be one of the
// crossings in xs.  xs must be sorted by t and contain every crossing of r
// with the scene, so that the media on either side of the surface can be
// worked out.  objects is the scene's object list.
func Prepare(hit Intersection, r ray.Ray, xs List, objects []*shape.Object) (Computed, error) {
	obj := objects[hit.Object]

	c := Computed{
		T:      hit.T,
		Object: hit.Object,
		Point:  r.Eval(hit.T),
		Eye:    vec4.Neg(r.Slope),
	}

	normal, err := obj.NormalAt(c.Point)
	if err != nil {
		return Computed{}, fmt.Errorf("while computing surface normal: %w", err)
	}
	if vec4.IProd(normal, c.Eye) < 0 {
		c.Inside = true
		normal = vec4.Neg(normal)
	}
	c.Normal = normal

	c.Reflect = vec4.Reflect(r.Slope, c.Normal)
	c.OverPoint = vec4.AddVV(c.Point, vec4.MulVS(c.Normal, approx.Epsilon))
	c.UnderPoint = vec4.SubVV(c.Point, vec4.MulVS(c.Normal, approx.Epsilon))

	c.N1, c.N2 = refractiveIndices(hit, xs, objects)
	return c, nil
}

// refractiveIndices walks the crossings in order, tracking which objects the
// ray is inside.  The innermost object when the ray reaches hit gives n1, and
// the innermost object just after gives n2.  Outside everything is vacuum.
func refractiveIndices(hit Intersection, xs List, objects []*shape.Object) (float64, float64) {
	n1, n2 := 1.0, 1.0

	innermost := func(containers []int) float64 {
		if len(containers) == 0 {
			return 1.0
		}
		return objects[containers[len(containers)-1]].Material.RefractiveIndex
	}

	containers := []int{}
	for _, x := range xs {
		isHit := x.Equal(hit)
		if isHit {
			n1 = innermost(containers)
		}

		found := -1
		for i, c := range containers {
			if c == x.Object {
				found = i
				break
			}
		}
		if found == -1 {
			containers = append(containers, x.Object)
		} else {
			containers = append(containers[:found], containers[found+1:]...)
		}

		if isHit {
			n2 = innermost(containers)
			break
		}
	}

	return n1, n2
}

// Schlick approximates the fraction of light reflected at the surface.
func (c *Computed) Schlick() float64 {
	cos := vec4.IProd(c.Eye, c.Normal)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2T := n * n * (1.0 - cos*cos)
		if sin2T > 1.0 {
			// Total internal reflection.
			return 1.0
		}
		cos = math.Sqrt(1.0 - sin2T)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
