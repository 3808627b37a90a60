package landing

import (
	"fmt"
	"math"
	"strings"
)

// G is the gravitational constant in m^3 kg^-1 s^-2.
const G = 6.67430e-11

// Gravity returns the gravitational acceleration in m/s^2 at the given
// altitude above a body of the provided mass and equatorial radius, per
// Newton's law of universal gravitation. The returned value is negative,
// pointing toward the surface.
func Gravity(altitude, bodyMass, bodyRadius float64) float64 {
	r := bodyRadius + altitude
	return -G * bodyMass / (r * r)
}

// CelestialBody defines the celestial body a descent happens onto.
type CelestialBody struct {
	Name   string
	Mass   float64 // kg
	Radius float64 // equatorial radius in meters
}

// Gravity returns the gravitational acceleration at the given altitude above
// this body's surface.
func (c CelestialBody) Gravity(altitude float64) float64 {
	return Gravity(altitude, c.Mass, c.Radius)
}

// String implements the Stringer interface.
func (c CelestialBody) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial body is the same.
func (c CelestialBody) Equals(b CelestialBody) bool {
	return c.Name == b.Name && c.Mass == b.Mass && c.Radius == b.Radius
}

// SurfaceGravity returns the magnitude of the gravitational acceleration at
// the body's surface.
func (c CelestialBody) SurfaceGravity() float64 {
	return math.Abs(c.Gravity(0))
}

/* Definitions of the supported bodies. */

// Luna is the Moon.
var Luna = CelestialBody{"Luna", 7.34767309e22, 1737100}

// Earth is home.
var Earth = CelestialBody{"Earth", 5.97237e24, 6378136.3}

// Mars is the fourth planet.
var Mars = CelestialBody{"Mars", 6.4185e23, 3396190}

// CelestialBodyFromString returns the body from its name, or an error if
// unknown.
func CelestialBodyFromString(name string) (CelestialBody, error) {
	switch strings.ToLower(name) {
	case "luna", "moon":
		return Luna, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	}
	return CelestialBody{}, fmt.Errorf("unknown celestial body `%s`", name)
}
