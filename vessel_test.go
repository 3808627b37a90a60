package landing

import (
	"errors"
	"testing"
	"time"
)

// fakeVessel integrates its own physics when the lander sleeps, so the test
// runs without wall-clock time.
type fakeVessel struct {
	state     VesselState
	throttle  float64
	throttles []float64
	readErr   error
}

func newFakeVessel() *fakeVessel {
	return &fakeVessel{state: VesselState{
		Altitude:  100,
		Velocity:  -50,
		Mass:      1000,
		MaxThrust: 20000,
		Body:      Luna,
	}}
}

func (v *fakeVessel) ReadState() (VesselState, error) {
	if v.readErr != nil {
		return VesselState{}, v.readErr
	}
	return v.state, nil
}

func (v *fakeVessel) SetThrottle(fraction float64) error {
	v.throttles = append(v.throttles, fraction)
	v.throttle = fraction
	return nil
}

func (v *fakeVessel) advance(d time.Duration) {
	const step = 0.001
	remaining := d.Seconds()
	for remaining > 0 && v.state.Altitude > 0 {
		h := step
		if remaining < h {
			h = remaining
		}
		accel := v.state.Body.Gravity(v.state.Altitude) + v.throttle*v.state.MaxThrust/v.state.Mass
		v.state.Velocity += accel * h
		v.state.Altitude += v.state.Velocity * h
		remaining -= h
	}
	if v.state.Altitude < 0 {
		v.state.Altitude = 0
	}
}

func TestLanderReachesFinalHeight(t *testing.T) {
	vessel := newFakeVessel()
	lander := NewLander(vessel, refParams(), 3, 10*time.Millisecond, nil)
	lander.sleep = vessel.advance
	if err := lander.Land(); err != nil {
		t.Fatal(err)
	}
	if vessel.state.Altitude > 3 {
		t.Fatalf("maneuver ended at %f m, above the final height", vessel.state.Altitude)
	}
	if len(vessel.throttles) == 0 {
		t.Fatal("the lander never commanded the throttle")
	}
	for i, fraction := range vessel.throttles {
		if fraction < 0 || fraction > 1 {
			t.Fatalf("throttle command %d out of range: %f", i, fraction)
		}
	}
	if last := vessel.throttles[len(vessel.throttles)-1]; last != 0 {
		t.Fatalf("throttle must be zeroed on exit, got %f", last)
	}
}

func TestLanderUnpowered(t *testing.T) {
	vessel := newFakeVessel()
	vessel.state.MaxThrust = 0
	lander := NewLander(vessel, refParams(), 3, 10*time.Millisecond, nil)
	lander.sleep = vessel.advance
	if err := lander.Land(); !errors.Is(err, ErrUnpowered) {
		t.Fatalf("expected ErrUnpowered, got %v", err)
	}
	if last := vessel.throttles[len(vessel.throttles)-1]; last != 0 {
		t.Fatalf("throttle must be zeroed on exit, got %f", last)
	}
}

func TestLanderPropagatesTelemetryErrors(t *testing.T) {
	vessel := newFakeVessel()
	vessel.readErr = errors.New("telemetry link lost")
	lander := NewLander(vessel, refParams(), 3, 10*time.Millisecond, nil)
	lander.sleep = vessel.advance
	if err := lander.Land(); !errors.Is(err, vessel.readErr) {
		t.Fatalf("expected the telemetry error, got %v", err)
	}
}
