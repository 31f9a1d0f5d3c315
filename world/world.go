// Package world holds the objects and lights of a scene and traces rays
// through them.
//
// Objects live in an arena.  Intersections and shading refer to them by their
// index in World.Objects, so two objects with identical geometry and material
// are still told apart.
package world

import (
	"fmt"
	"math"
	"whitted/affinetransform"
	"whitted/intersection"
	"whitted/light"
	"whitted/pattern"
	"whitted/ray"
	"whitted/rgb"
	"whitted/shape"
	"whitted/vmath/vec4"
)

// DefaultMaxDepth bounds how many reflection and refraction bounces a
// primary ray may take.
const DefaultMaxDepth = 5

type World struct {
	Objects []*shape.Object
	Lights  []light.Point
}

func New() *World {
	return &World{}
}

// Default builds the standard test scene: a light green unit sphere with a
// smaller sphere inside it, lit by one white light above and to the left.
func Default() *World {
	w := New()

	outer := shape.NewSphere()
	outer.Material.Pattern = pattern.Solid(rgb.T{0.8, 1.0, 0.6})
	outer.Material.Diffuse = 0.7
	outer.Material.Specular = 0.2
	w.AddObject(outer)

	inner := shape.NewSphere()
	inner.Transform = affinetransform.Scale(0.5, 0.5, 0.5)
	w.AddObject(inner)

	w.AddLight(light.NewPoint(vec4.Point(-10, 10, -10), rgb.White()))
	return w
}

// AddObject is a convenience function to register an object and get its
// index.
func (w *World) AddObject(o *shape.Object) int {
	w.Objects = append(w.Objects, o)
	return len(w.Objects) - 1
}

func (w *World) AddLight(l light.Point) int {
	w.Lights = append(w.Lights, l)
	return len(w.Lights) - 1
}

// Crush returns a copy of the world with every object crushed, ready to be
// traced from many goroutines at once.  w is only read, so several renders
// may crush the same world concurrently.
func (w *World) Crush() (*World, error) {
	crushed := &World{
		Objects: make([]*shape.Object, len(w.Objects)),
		Lights:  append([]light.Point(nil), w.Lights...),
	}
	for i, o := range w.Objects {
		c, err := o.Crush()
		if err != nil {
			return nil, newObjectError(i, "crushing", err)
		}
		crushed.Objects[i] = c
	}
	return crushed, nil
}

// Intersect returns every crossing of r with every object, sorted by t.
func (w *World) Intersect(r ray.Ray) (intersection.List, error) {
	xs := intersection.List{}
	for i, o := range w.Objects {
		ts, err := o.Intersect(r)
		if err != nil {
			return nil, newObjectError(i, "intersecting", err)
		}
		for _, t := range ts {
			xs = append(xs, intersection.Intersection{T: t, Object: i})
		}
	}
	xs.Sort()
	return xs, nil
}

// IsShadowed reports whether any object lies between p and the light.
func (w *World) IsShadowed(p vec4.T, l light.Point) (bool, error) {
	v := vec4.SubVV(l.Position, p)
	distance := v.Norm()

	xs, err := w.Intersect(ray.New(p, vec4.Normalize(v)))
	if err != nil {
		return false, fmt.Errorf("while casting shadow ray: %w", err)
	}

	hit, ok := xs.Hit()
	return ok && hit.T < distance, nil
}

// ColorAt traces r into the world.  remaining is the number of further
// bounces allowed.  Rays that hit nothing are black.
func (w *World) ColorAt(r ray.Ray, remaining int) (rgb.T, error) {
	xs, err := w.Intersect(r)
	if err != nil {
		return rgb.T{}, err
	}

	hit, ok := xs.Hit()
	if !ok {
		return rgb.Black(), nil
	}

	comps, err := intersection.Prepare(hit, r, xs, w.Objects)
	if err != nil {
		return rgb.T{}, newObjectError(hit.Object, "preparing hit", err)
	}

	return w.ShadeHit(&comps, remaining)
}

// ShadeHit computes the color at a prepared hit.  Each light contributes its
// local Phong term plus the reflected and refracted light.  Surfaces that are
// both reflective and transparent blend the two by the Schlick reflectance.
func (w *World) ShadeHit(comps *intersection.Computed, remaining int) (rgb.T, error) {
	if len(w.Lights) == 0 {
		return rgb.Black(), nil
	}

	obj := w.Objects[comps.Object]

	reflected, err := w.ReflectedColor(comps, remaining)
	if err != nil {
		return rgb.T{}, err
	}
	refracted, err := w.RefractedColor(comps, remaining)
	if err != nil {
		return rgb.T{}, err
	}

	var secondary rgb.T
	if obj.Material.Reflective > 0 && obj.Material.Transparency > 0 {
		reflectance := comps.Schlick()
		secondary = rgb.AddCC(
			rgb.MulCS(reflected, reflectance),
			rgb.MulCS(refracted, 1-reflectance),
		)
	} else {
		secondary = rgb.AddCC(reflected, refracted)
	}

	// The secondary rays do not depend on the light, so they are traced once
	// and counted once per light.
	result := rgb.Black()
	for _, l := range w.Lights {
		shadowed, err := w.IsShadowed(comps.OverPoint, l)
		if err != nil {
			return rgb.T{}, err
		}

		surface, err := obj.Lighting(l, comps.OverPoint, comps.Eye, comps.Normal, shadowed)
		if err != nil {
			return rgb.T{}, newObjectError(comps.Object, "lighting", err)
		}

		result = rgb.AddCC(result, rgb.AddCC(surface, secondary))
	}

	return result, nil
}

// ReflectedColor traces the mirror bounce off the hit.
func (w *World) ReflectedColor(comps *intersection.Computed, remaining int) (rgb.T, error) {
	reflective := w.Objects[comps.Object].Material.Reflective
	if reflective == 0 || remaining <= 0 {
		return rgb.Black(), nil
	}

	c, err := w.ColorAt(ray.New(comps.OverPoint, comps.Reflect), remaining-1)
	if err != nil {
		return rgb.T{}, err
	}
	return rgb.MulCS(c, reflective), nil
}

// RefractedColor traces the ray transmitted through the hit, bent by Snell's
// law.  Total internal reflection transmits nothing.
func (w *World) RefractedColor(comps *intersection.Computed, remaining int) (rgb.T, error) {
	transparency := w.Objects[comps.Object].Material.Transparency
	if transparency == 0 || remaining <= 0 {
		return rgb.Black(), nil
	}

	nRatio := comps.N1 / comps.N2
	cosI := vec4.IProd(comps.Eye, comps.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return rgb.Black(), nil
	}

	cosT := math.Sqrt(1.0 - sin2T)
	direction := vec4.SubVV(
		vec4.MulVS(comps.Normal, nRatio*cosI-cosT),
		vec4.MulVS(comps.Eye, nRatio),
	)

	c, err := w.ColorAt(ray.New(comps.UnderPoint, direction), remaining-1)
	if err != nil {
		return rgb.T{}, err
	}
	return rgb.MulCS(c, transparency), nil
}
