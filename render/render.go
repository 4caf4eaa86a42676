// Package render paints generated loop tracks onto 2D raster surfaces.
//
// The painter speaks to surfaces through the Canvas interface: clear
// the surface, then fill small squares for curve samples and larger
// squares for control point markers. Raster is the built-in Canvas
// backed by an image.RGBA with an affine model-to-pixel viewport;
// TrackImage and WritePNG produce finished (optionally supersampled)
// images from a loop.
package render

import (
	"image/color"

	"github.com/looptrack/looptrack"
	"github.com/looptrack/looptrack/track"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'render'
func tracer() tracing.Trace {
	return tracing.Select("render")
}

// Canvas is the surface contract of the painter. Implementations may
// clip or ignore fills outside their bounds; the painter never clamps
// coordinates.
type Canvas interface {
	// Clear fills the whole surface with c.
	Clear(c color.Color)
	// FillSquare fills an axis-aligned square with the given side
	// length, centered at center (model coordinates).
	FillSquare(center looptrack.Pair, size float64, c color.Color)
}

// Colors used in rendering
var (
	colorBackground = color.RGBA{24, 26, 32, 255}    // near-black
	colorCurve      = color.RGBA{236, 239, 244, 255} // off-white
	colorMarker     = color.RGBA{191, 97, 106, 255}  // muted red
	colorFill       = color.RGBA{59, 66, 82, 255}    // slate wash
)

// Style selects the colors and square sizes of a painted track.
type Style struct {
	Background color.Color
	Curve      color.Color // curve sample squares
	Marker     color.Color // control point squares
	Fill       color.Color // interior wash (only with Options.FillInterior)
	CurveSize  float64     // side length of curve sample squares
	MarkerSize float64     // side length of control point squares
}

// DefaultStyle returns the default palette: 2x2 curve samples and 6x6
// control point markers on a dark background.
func DefaultStyle() Style {
	return Style{
		Background: colorBackground,
		Curve:      colorCurve,
		Marker:     colorMarker,
		Fill:       colorFill,
		CurveSize:  2,
		MarkerSize: 6,
	}
}

// DrawTrack paints a generated loop onto cv: clear first, then one
// small square per curve sample, then one larger square per control
// point. A nil cv is caller misuse and panics.
func DrawTrack(cv Canvas, loop track.Loop, density float64, style Style) {
	if cv == nil {
		panic("cannot draw track on nil canvas")
	}
	cv.Clear(style.Background)
	paintCurve(cv, loop, density, style)
}

func paintCurve(cv Canvas, loop track.Loop, density float64, style Style) {
	cnt := 0
	for pt := range track.Samples(loop, density) {
		cv.FillSquare(pt, style.CurveSize, style.Curve)
		cnt++
	}
	for i := 0; i < loop.N(); i++ {
		cv.FillSquare(loop.Z(i), style.MarkerSize, style.Marker)
	}
	tracer().Debugf("painted %d curve samples and %d control points", cnt, loop.N())
}
