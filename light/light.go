package light

import (
	"whitted/rgb"
	"whitted/vmath/vec4"
)

// Point is a light with no size, radiating Intensity equally in every
// direction from Position.
type Point struct {
	Position  vec4.T
	Intensity rgb.T
}

func NewPoint(position vec4.T, intensity rgb.T) Point {
	return Point{Position: position, Intensity: intensity}
}
