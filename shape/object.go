// Package shape places geometry in the world and gives it a material.
package shape

import (
	"fmt"
	"whitted/light"
	"whitted/material"
	"whitted/ray"
	"whitted/rgb"
	"whitted/vmath/matrix"
	"whitted/vmath/vec4"
)

type Object struct {
	Geometry Geometry
	Material material.Material

	// The transform that takes model space to world space.
	Transform matrix.T

	// Only set on the copies Crush returns.  Each cached inverse remembers the
	// matrix it was computed from and is ignored once that matrix changes.
	crushedTransform matrix.T
	worldToModel     matrix.T
	crushedPattern   matrix.T
	modelToPattern   matrix.T
}

func newObject(g Geometry) *Object {
	return &Object{
		Geometry:  g,
		Material:  material.Default(),
		Transform: matrix.Identity(),
	}
}

func NewSphere() *Object {
	return newObject(Sphere{})
}

func NewPlane() *Object {
	return newObject(Plane{})
}

func NewCube() *Object {
	return newObject(Cube{})
}

// GlassSphere is a fully transparent unit sphere with the refractive index of
// glass.
func GlassSphere() *Object {
	o := NewSphere()
	o.Material.Transparency = 1.0
	o.Material.RefractiveIndex = 1.5
	return o
}

// Crush returns a copy of o with its inverse transforms precomputed.  o itself
// is never written, so it may be crushed while other goroutines read it.  The
// copy must not be modified while it is being traced.
func (o *Object) Crush() (*Object, error) {
	crushed := *o

	worldToModel, err := matrix.Inverse(o.Transform)
	if err != nil {
		return nil, fmt.Errorf("while inverting object transform: %w", err)
	}
	crushed.crushedTransform = o.Transform
	crushed.worldToModel = worldToModel

	p := o.Material.Pattern
	if p.IsUniform() {
		return &crushed, nil
	}
	modelToPattern, err := matrix.Inverse(p.Transform)
	if err != nil {
		return nil, fmt.Errorf("while inverting %v pattern transform: %w", p.Kind, err)
	}
	crushed.crushedPattern = p.Transform
	crushed.modelToPattern = modelToPattern
	return &crushed, nil
}

func (o *Object) inverse() (matrix.T, error) {
	if o.crushedTransform.Size != 0 && o.crushedTransform == o.Transform {
		return o.worldToModel, nil
	}
	inv, err := matrix.Inverse(o.Transform)
	if err != nil {
		return matrix.T{}, fmt.Errorf("while inverting object transform: %w", err)
	}
	return inv, nil
}

// Intersect returns the t value of every crossing of the object's surface by
// the world-space ray r.
func (o *Object) Intersect(r ray.Ray) ([]float64, error) {
	worldToModel, err := o.inverse()
	if err != nil {
		return nil, err
	}
	return o.Geometry.LocalIntersect(r.Transform(worldToModel)), nil
}

// NormalAt returns the unit surface normal at a world-space point on the
// object.
func (o *Object) NormalAt(p vec4.T) (vec4.T, error) {
	worldToModel, err := o.inverse()
	if err != nil {
		return vec4.T{}, err
	}

	modelNormal := o.Geometry.LocalNormalAt(matrix.MulMV(worldToModel, p))

	// Normals go through the inverse transpose.  Its w component picks up the
	// translation part and has to be dropped.
	worldNormal := matrix.MulMV(matrix.Transpose(worldToModel), modelNormal)
	worldNormal[3] = 0
	return vec4.Normalize(worldNormal), nil
}

// ColorAt samples the object's pattern at a world-space point.
func (o *Object) ColorAt(p vec4.T) (rgb.T, error) {
	pat := o.Material.Pattern
	if pat.IsUniform() {
		return pat.A, nil
	}

	worldToModel, err := o.inverse()
	if err != nil {
		return rgb.T{}, err
	}
	modelPoint := matrix.MulMV(worldToModel, p)

	if o.crushedPattern.Size != 0 && o.crushedPattern == pat.Transform {
		return pat.ColorAt(matrix.MulMV(o.modelToPattern, modelPoint)), nil
	}
	return pat.ColorAtObject(modelPoint)
}

// Lighting shades a world-space point on the object under a single light.
func (o *Object) Lighting(l light.Point, p, eye, normal vec4.T, inShadow bool) (rgb.T, error) {
	surface, err := o.ColorAt(p)
	if err != nil {
		return rgb.T{}, err
	}
	return o.Material.Lighting(surface, l, p, eye, normal, inShadow), nil
}
