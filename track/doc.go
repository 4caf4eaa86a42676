// Package track generates closed, smooth loop tracks from a handful of
// randomly jittered control points.
/*

Generation happens in two stages, evaluated leaf-first:

First, control points are placed on a jittered circle. For each of N
points the base angle divides the circle evenly; radius and angle are
then perturbed with bounded pseudo-random jitter drawn from an injected
deterministic source. The same seed always reproduces the same loop.

Second, the control points are smoothed with uniform Catmull-Rom spline
interpolation. Each control point index defines one spline segment over
the wrapping window of 4 consecutive points, so the curve closes on
itself. Segments are sampled with a density proportional to the chord
distance between the two interpolated points; short chords get few
samples, a chord shorter than one sample step contributes none.

Usage

Build a settings value, hand it a fresh random source, and iterate the
curve (package qualifiers omitted for brevity):

   settings := DefaultSettings()
   settings.Seed = "monza"
   loop := Generate(settings, prng.Parse(settings.Seed))
   for pt := range Samples(loop, settings.SplineDensity) {
      // paint pt
   }

The curve passes exactly through every control point at the seam
between segments, with continuous tangents across seams. Samples may
fall outside the canvas when jitter pushes control points out of range;
bounds clamping is the renderer's business, not ours.

Degenerate inputs are accepted, not rejected: fewer than 4 control
points make every 4-point window repeat indices, which still evaluates
to a valid (if geometrically collapsed) closed curve. All numeric
settings map to some output; pre-flight checking is available through
Settings.Validate for callers that want it.

# BSD License

# Copyright (c) the looptrack authors

All rights reserved.

Please refer to the license file for more information.
*/
package track
