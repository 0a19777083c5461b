package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ejharv/boxtracer/pkg/core"
)

// Framebuffer is a width x height grid of RGB pixels with float64 channels in
// [0, 1], stored row-major with row 0 at the top of the image.
type Framebuffer struct {
	Width  int
	Height int
	pix    []core.Vec3
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: framebuffer dimensions must be positive, got %dx%d",
			core.ErrInvalidConfiguration, width, height)
	}
	return &Framebuffer{
		Width:  width,
		Height: height,
		pix:    make([]core.Vec3, width*height),
	}, nil
}

// At returns the pixel at column x, row y
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pix[y*fb.Width+x]
}

// Set writes the pixel at column x, row y
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.pix[y*fb.Width+x] = c
}

// ToRGBA converts the framebuffer to an 8-bit RGBA image for encoding.
// Channels are clamped to [0, 1] and scaled; no gamma correction is applied,
// the buffer already holds display-ready values.
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y).Clamp(0.0, 1.0)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}

	return img
}
