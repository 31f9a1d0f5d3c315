// Package camera turns a world into an image.
package camera

import (
	"fmt"
	"math"
	"whitted/ray"
	"whitted/vmath/matrix"
	"whitted/vmath/vec4"
)

// Camera is a pinhole camera looking down its own -z axis at a canvas one
// unit away.  It is immutable once built.
type Camera struct {
	hsize, vsize int
	fieldOfView  float64

	// The transform that takes world space to camera space, usually built with
	// affinetransform.ViewTransform.
	transform matrix.T
	inverse   matrix.T

	halfWidth, halfHeight float64
	pixelSize             float64
}

// New builds a camera producing hsize x vsize images.  fieldOfView is the
// angle, in radians, spanned by the longer side of the image.
func New(hsize, vsize int, fieldOfView float64, transform matrix.T) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("bad image size %dx%d", hsize, vsize)
	}

	inverse, err := matrix.Inverse(transform)
	if err != nil {
		return nil, fmt.Errorf("while inverting camera transform: %w", err)
	}

	c := &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   transform,
		inverse:     inverse,
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c, nil
}

func (c *Camera) HSize() int {
	return c.hsize
}

func (c *Camera) VSize() int {
	return c.vsize
}

func (c *Camera) FieldOfView() float64 {
	return c.fieldOfView
}

func (c *Camera) Transform() matrix.T {
	return c.transform
}

// PixelSize is the width of one pixel on the canvas, in world units.
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the world-space ray through the center of the pixel in
// column px of row py.
func (c *Camera) RayForPixel(px, py int) ray.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := matrix.MulMV(c.inverse, vec4.Point(worldX, worldY, -1))
	origin := matrix.MulMV(c.inverse, vec4.Point(0, 0, 0))
	return ray.New(origin, vec4.Normalize(vec4.SubVV(pixel, origin)))
}
