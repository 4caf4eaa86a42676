package track

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/looptrack/looptrack"
	"github.com/looptrack/looptrack/prng"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func TestGenerateCountInvariant(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	settings := DefaultSettings()
	for _, n := range []int{1, 2, 3, 4, 7, 50} {
		settings.NumPoints = n
		loop := Generate(settings, prng.New(42))
		if loop.N() != n {
			t.Errorf("numPoints=%d: got %d control points", n, loop.N())
		}
	}
	settings.NumPoints = 0
	if loop := Generate(settings, prng.New(42)); loop.N() != 0 {
		t.Errorf("numPoints=0: got %d control points", loop.N())
	}
	settings.NumPoints = -3
	if loop := Generate(settings, prng.New(42)); loop.N() != 0 {
		t.Errorf("numPoints=-3: got %d control points", loop.N())
	}
}

func TestGenerateDeterminism(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	settings := DefaultSettings()
	settings.NumPoints = 12
	a := Generate(settings, prng.New(12345))
	b := Generate(settings, prng.New(12345))
	if diff := cmp.Diff(a.Points(), b.Points()); diff != "" {
		t.Errorf("same seed produced different control points:\n%s", diff)
	}
	c := Generate(settings, prng.New(54321))
	if diff := cmp.Diff(a.Points(), c.Points()); diff == "" {
		t.Errorf("different seeds produced identical control points")
	}
}

// With all jitter fractions zero the output is seed-independent and
// exactly computable: 4 points on a circle of radius 0.333·half at
// angles 0, π/2, π, 3π/2.
func TestGenerateZeroJitterCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	settings := Settings{
		NumPoints:      4,
		RadiusFraction: 0.333,
		SplineDensity:  1,
		Width:          512,
		Height:         512,
	}
	r := 0.333 * 256
	want := []looptrack.Pair{
		looptrack.P(256+r, 256),
		looptrack.P(256, 256+r),
		looptrack.P(256-r, 256),
		looptrack.P(256, 256-r),
	}
	for _, seed := range []int64{12345, 999} {
		loop := Generate(settings, prng.New(seed))
		if loop.N() != 4 {
			t.Fatalf("seed %d: got %d points", seed, loop.N())
		}
		for i, w := range want {
			if !loop.Z(i).Equal(w) {
				t.Errorf("seed %d: point %d = %v, want %v", seed, i, loop.Z(i), w)
			}
		}
	}
}

func TestGenerateDrawsTwoValuesPerPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// zero jitter must consume the same draw sequence as full jitter
	src := prng.New(7)
	settings := DefaultSettings()
	settings.NumPoints = 5
	settings.RadiusJitterFraction = 0
	settings.ThetaJitterFraction = 0
	Generate(settings, src)
	after := src.NextFloat()
	ref := prng.New(7)
	for i := 0; i < 2*5; i++ {
		ref.NextFloat()
	}
	if after != ref.NextFloat() {
		t.Errorf("generation with zero jitter consumed an unexpected number of draws")
	}
}

func TestGenerateNilSourcePanics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	settings := DefaultSettings()
	mustPanic(t, func() { Generate(settings, nil) })
}

func TestLoopWraparound(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	loop := LoopOf(looptrack.P(0, 0), looptrack.P(1, 0), looptrack.P(1, 1))
	if loop.Z(3) != loop.Z(0) {
		t.Errorf("Z(3) should wrap to Z(0)")
	}
	if loop.Z(-1) != loop.Z(2) {
		t.Errorf("Z(-1) should wrap to Z(2)")
	}
	if loop.Z(7) != loop.Z(1) {
		t.Errorf("Z(7) should wrap to Z(1)")
	}
}

func TestLoopPointsIsACopy(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	loop := LoopOf(looptrack.P(0, 0), looptrack.P(1, 0))
	pts := loop.Points()
	pts[0] = looptrack.P(9, 9)
	if loop.Z(0) != looptrack.P(0, 0) {
		t.Errorf("mutating Points() result must not affect the loop")
	}
}

func TestAsString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	loop := LoopOf(looptrack.P(1, 1), looptrack.P(2, 2), looptrack.P(3, 1))
	if got, want := AsString(loop), "(1,1) .. (2,2) .. (3,1) .. cycle"; got != want {
		t.Errorf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
	if got := AsString(Loop{}); got != "" {
		t.Errorf("empty loop should stringify empty, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("default settings should validate, got %v", err)
	}
	s := DefaultSettings()
	s.NumPoints = 2
	if err := s.Validate(); !errors.Is(err, ErrBadPointCount) {
		t.Errorf("expected ErrBadPointCount, got %v", err)
	}
	s = DefaultSettings()
	s.SplineDensity = -1
	if err := s.Validate(); !errors.Is(err, ErrBadDensity) {
		t.Errorf("expected ErrBadDensity, got %v", err)
	}
	s = DefaultSettings()
	s.RadiusFraction = math.NaN()
	if err := s.Validate(); !errors.Is(err, ErrNonFinite) {
		t.Errorf("expected ErrNonFinite, got %v", err)
	}
}

// Validation is advisory only: Generate must still produce output for
// settings Validate rejects.
func TestGenerateAcceptsDegenerateSettings(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := DefaultSettings()
	s.NumPoints = 2
	s.RadiusFraction = math.NaN()
	loop := Generate(s, prng.New(1))
	if loop.N() != 2 {
		t.Errorf("degenerate settings should still yield 2 points, got %d", loop.N())
	}
}
