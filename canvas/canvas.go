// Package canvas is the pixel buffer a render writes into.
//
// Colors are stored exactly as shaded, without clamping.  Turning them into
// an image file is left to the caller.
package canvas

import "whitted/rgb"

type Canvas struct {
	Width, Height int

	// Row-major, Width pixels per row.
	Pixels []rgb.T
}

// New returns a canvas with every pixel black.
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pixels: make([]rgb.T, width*height),
	}
}

// WritePixel sets the pixel in column x of row y.  Distinct pixels may be
// written from different goroutines.
func (c *Canvas) WritePixel(x, y int, color rgb.T) {
	c.Pixels[y*c.Width+x] = color
}

func (c *Canvas) PixelAt(x, y int) rgb.T {
	return c.Pixels[y*c.Width+x]
}

// Row returns row y of the canvas.  The slice aliases the canvas.
func (c *Canvas) Row(y int) []rgb.T {
	return c.Pixels[y*c.Width : (y+1)*c.Width]
}
