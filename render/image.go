package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/looptrack/looptrack"
	"github.com/looptrack/looptrack/track"
	xdraw "golang.org/x/image/draw"
)

// Options configures finished track images.
type Options struct {
	Width, Height int     // output size in pixels
	Supersample   int     // render at S× size, downsample for smoothness
	Margin        float64 // pixel margin around the auto-fitted curve
	AutoFit       bool    // fit the curve's bounding box into the image
	FillInterior  bool    // wash the loop's interior with Style.Fill
	Rotation      float64 // radians, counterclockwise about the image center
	Style         Style
}

// DefaultOptions returns 512×512 output with 4× supersampling and an
// auto-fitted viewport.
func DefaultOptions() Options {
	return Options{
		Width:       512,
		Height:      512,
		Supersample: 4,
		Margin:      24,
		AutoFit:     true,
		Style:       DefaultStyle(),
	}
}

// sampleContour gathers the loop's curve samples into a polyclip
// contour. Falls back to the control points when the curve has no
// samples (e.g. density 0).
func sampleContour(loop track.Loop, density float64) polyclip.Contour {
	var contour polyclip.Contour
	for pt := range track.Samples(loop, density) {
		contour.Add(polyclip.Point{X: pt.X(), Y: pt.Y()})
	}
	if len(contour) == 0 {
		for i := 0; i < loop.N(); i++ {
			contour.Add(polyclip.Point{X: loop.Z(i).X(), Y: loop.Z(i).Y()})
		}
	}
	return contour
}

// FitViewport returns the affine transform mapping the curve's
// bounding box into a width×height surface, centered, with the given
// margin on all sides. An empty loop maps through the identity.
func FitViewport(loop track.Loop, density float64, width, height int, margin float64) looptrack.AT {
	contour := sampleContour(loop, density)
	if len(contour) == 0 {
		return looptrack.Identity()
	}
	bb := contour.BoundingBox()
	bw := bb.Max.X - bb.Min.X
	bh := bb.Max.Y - bb.Min.Y
	availW := float64(width) - 2*margin
	availH := float64(height) - 2*margin
	if availW <= 0 || availH <= 0 {
		return looptrack.Identity()
	}
	sx, sy := math.Inf(1), math.Inf(1)
	if bw > 0 {
		sx = availW / bw
	}
	if bh > 0 {
		sy = availH / bh
	}
	scale := math.Min(sx, sy)
	if math.IsInf(scale, 1) {
		scale = 1 // bounding box collapsed to a point
	}
	ox := margin + (availW-bw*scale)/2 - bb.Min.X*scale
	oy := margin + (availH-bh*scale)/2 - bb.Min.Y*scale
	tracer().Debugf("viewport scale %.4g, offset (%.4g,%.4g)", scale, ox, oy)
	return looptrack.Scaling(scale, scale).Combine(looptrack.Translation(looptrack.P(ox, oy)))
}

// fillInterior washes every raster pixel inside the closed sample
// contour. Self-intersecting loops fill by the even-odd rule.
func fillInterior(r *Raster, loop track.Loop, density float64, c color.Color) {
	contour := sampleContour(loop, density)
	if len(contour) < 3 {
		return
	}
	// a coarse contour is plenty for a wash
	step := 1 + len(contour)/256
	var px polyclip.Contour
	for i := 0; i < len(contour); i += step {
		q := r.view.Transform(looptrack.P(contour[i].X, contour[i].Y))
		px.Add(polyclip.Point{X: q.X(), Y: q.Y()})
	}
	bb := px.BoundingBox()
	bounds := r.img.Bounds()
	x0 := max(int(math.Floor(bb.Min.X)), bounds.Min.X)
	x1 := min(int(math.Ceil(bb.Max.X)), bounds.Max.X-1)
	y0 := max(int(math.Floor(bb.Min.Y)), bounds.Min.Y)
	y1 := min(int(math.Ceil(bb.Max.Y)), bounds.Max.Y-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if px.Contains(polyclip.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}) {
				r.img.Set(x, y, c)
			}
		}
	}
}

// TrackImage renders a finished image of the loop. With supersampling
// the track is painted at S× size and downsampled with Catmull-Rom
// interpolation for smoother output.
func TrackImage(loop track.Loop, density float64, opts Options) *image.RGBA {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	w, h := opts.Width*ss, opts.Height*ss
	r := NewRaster(w, h)

	view := looptrack.Identity()
	if opts.AutoFit {
		view = FitViewport(loop, density, opts.Width, opts.Height, opts.Margin)
	}
	if ss > 1 {
		view = view.Combine(looptrack.Scaling(float64(ss), float64(ss)))
	}
	if opts.Rotation != 0 {
		cx, cy := float64(w)/2, float64(h)/2
		view = view.
			Combine(looptrack.Translation(looptrack.P(-cx, -cy))).
			Combine(looptrack.Rotation(opts.Rotation)).
			Combine(looptrack.Translation(looptrack.P(cx, cy)))
	}
	r.SetViewport(view)

	style := opts.Style
	r.Clear(style.Background)
	if opts.FillInterior {
		fillInterior(r, loop, density, style.Fill)
	}
	scaled := style
	scaled.CurveSize *= float64(ss)
	scaled.MarkerSize *= float64(ss)
	paintCurve(r, loop, density, scaled)

	if ss == 1 {
		return r.Image()
	}
	out := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), r.Image(), r.Image().Bounds(), xdraw.Over, nil)
	return out
}

// WritePNG renders the loop and writes it to path as a PNG file.
func WritePNG(path string, loop track.Loop, density float64, opts Options) error {
	img := TrackImage(loop, density, opts)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create track image %s: %w", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode track image %s: %w", path, err)
	}
	return nil
}
