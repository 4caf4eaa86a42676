// Command looptrack generates a random closed loop track and writes it
// to a PNG image.
//
// Usage:
//
//	looptrack -points 10 -seed monza -o track.png
//
// With no -seed the track differs on every run.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/looptrack/looptrack/prng"
	"github.com/looptrack/looptrack/render"
	"github.com/looptrack/looptrack/track"
	"github.com/npillmayer/schuko/tracing"
)

func main() {
	settings := track.DefaultSettings()
	opts := render.DefaultOptions()

	flag.IntVar(&settings.NumPoints, "points", settings.NumPoints,
		"number of control points on the loop")
	flag.Float64Var(&settings.RadiusFraction, "radius", settings.RadiusFraction,
		"base radius as a fraction of the surface half-extent")
	flag.Float64Var(&settings.RadiusJitterFraction, "radius-jitter", settings.RadiusJitterFraction,
		"radial jitter as a fraction of the base radius")
	flag.Float64Var(&settings.ThetaJitterFraction, "theta-jitter", settings.ThetaJitterFraction,
		"angular jitter as a fraction of pi")
	flag.Float64Var(&settings.SplineDensity, "density", settings.SplineDensity,
		"curve samples per unit of control point distance")
	flag.StringVar(&settings.Seed, "seed", "",
		"random seed (number or text); empty picks a fresh one")
	size := flag.Int("size", opts.Width, "output image size in pixels (square)")
	out := flag.String("o", "track.png", "output PNG file")
	fill := flag.Bool("fill", false, "wash the loop's interior")
	margin := flag.Float64("margin", opts.Margin, "pixel margin around the track")
	verbose := flag.Bool("v", false, "verbose tracing")
	flag.Parse()

	if *verbose {
		for _, key := range []string{"looptrack", "track", "render"} {
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		}
	}

	settings.Width, settings.Height = float64(*size), float64(*size)
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "looptrack: warning: %v\n", err)
	}

	loop := track.Generate(settings, prng.Parse(settings.Seed))

	opts.Width, opts.Height = *size, *size
	opts.Margin = *margin
	opts.FillInterior = *fill
	if err := render.WritePNG(*out, loop, settings.SplineDensity, opts); err != nil {
		fmt.Fprintf(os.Stderr, "looptrack: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d control points)\n", *out, loop.N())
}
