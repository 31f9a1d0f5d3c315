// Package material describes how a surface responds to light.
package material

import (
	"math"
	"whitted/light"
	"whitted/pattern"
	"whitted/rgb"
	"whitted/vmath/vec4"
)

type Material struct {
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64

	// Fraction of incoming light mirrored off the surface.
	Reflective float64

	// Fraction of incoming light passed through the surface.
	Transparency    float64
	RefractiveIndex float64

	Pattern pattern.Pattern
}

func Default() Material {
	return Material{
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
		Pattern:         pattern.Solid(rgb.White()),
	}
}

// Lighting computes the Phong contribution of a single light at a point.
//
// surface is the pattern color already sampled at the point.  eye and normal
// must be unit vectors.  A point in shadow only receives the ambient term.
func (m *Material) Lighting(surface rgb.T, l light.Point, point, eye, normal vec4.T, inShadow bool) rgb.T {
	effective := rgb.MulCC(surface, l.Intensity)
	ambient := rgb.MulCS(effective, m.Ambient)
	if inShadow {
		return ambient
	}

	lightV := vec4.Normalize(vec4.SubVV(l.Position, point))
	lightDotNormal := vec4.IProd(lightV, normal)
	if lightDotNormal < 0 {
		// The light is on the other side of the surface.
		return ambient
	}

	diffuse := rgb.MulCS(effective, m.Diffuse*lightDotNormal)

	specular := rgb.Black()
	reflectV := vec4.Reflect(vec4.Neg(lightV), normal)
	reflectDotEye := vec4.IProd(reflectV, eye)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = rgb.MulCS(l.Intensity, m.Specular*factor)
	}

	return rgb.AddCC(ambient, rgb.AddCC(diffuse, specular))
}
