package landing

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestGravity(t *testing.T) {
	// Lunar surface gravity.
	if g := Luna.Gravity(0); !floats.EqualWithinAbs(g, -1.62, 0.01) {
		t.Fatalf("lunar surface gravity = %f, expected about -1.62", g)
	}
	if g := Earth.Gravity(0); !floats.EqualWithinAbs(g, -9.80, 0.05) {
		t.Fatalf("terrestrial surface gravity = %f, expected about -9.80", g)
	}
	// Gravity weakens with altitude but never changes sign.
	prev := Luna.Gravity(0)
	for _, alt := range []float64{10, 1e3, 1e5, 1e7} {
		g := Luna.Gravity(alt)
		if g >= 0 {
			t.Fatalf("gravity at %f m is %f, must stay negative", alt, g)
		}
		if g <= prev {
			t.Fatalf("gravity magnitude must decrease with altitude (%f -> %f)", prev, g)
		}
		prev = g
	}
}

func TestCelestialBodyFromString(t *testing.T) {
	for _, name := range []string{"Luna", "moon", "Earth", "mars"} {
		if _, err := CelestialBodyFromString(name); err != nil {
			t.Fatalf("body `%s` should be known: %s", name, err)
		}
	}
	if body, err := CelestialBodyFromString("Vesta"); err == nil {
		t.Fatalf("body `Vesta` should be unknown, got %s", body)
	}
	moon, _ := CelestialBodyFromString("moon")
	if !moon.Equals(Luna) {
		t.Fatal("`moon` should alias Luna")
	}
	if Luna.Equals(Mars) {
		t.Fatal("Luna and Mars should differ")
	}
	if Luna.String() != "Luna body" {
		t.Fatalf("unexpected stringer output `%s`", Luna)
	}
}

func TestSurfaceGravity(t *testing.T) {
	if sg := Luna.SurfaceGravity(); !floats.EqualWithinAbs(sg, math.Abs(Luna.Gravity(0)), 1e-12) {
		t.Fatalf("surface gravity = %f", sg)
	}
}
