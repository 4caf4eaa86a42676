package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/looptrack/looptrack"
)

// Raster is a Canvas backed by an image.RGBA. An affine viewport maps
// model coordinates to pixels; the zero viewport is the identity, i.e.
// model space equals canvas-pixel space. Fills outside the image
// bounds are silently ignored.
type Raster struct {
	img  *image.RGBA
	view looptrack.AT
}

// NewRaster creates a width×height raster with an identity viewport.
func NewRaster(width, height int) *Raster {
	return &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		view: looptrack.Identity(),
	}
}

// SetViewport installs the model-to-pixel transform.
func (r *Raster) SetViewport(m looptrack.AT) {
	r.view = m
}

// Viewport returns the installed model-to-pixel transform.
func (r *Raster) Viewport() looptrack.AT {
	return r.view
}

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Clear fills the whole raster with c.
func (r *Raster) Clear(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillSquare fills an axis-aligned square of side length size (pixels
// after the viewport scale is applied to the center, not to the size),
// centered at the transformed center.
func (r *Raster) FillSquare(center looptrack.Pair, size float64, c color.Color) {
	p := r.view.Transform(center)
	s := int(math.Round(size))
	if s < 1 {
		s = 1
	}
	x0 := int(math.Round(p.X())) - s/2
	y0 := int(math.Round(p.Y())) - s/2
	for y := y0; y < y0+s; y++ {
		for x := x0; x < x0+s; x++ {
			r.img.Set(x, y, c)
		}
	}
}
