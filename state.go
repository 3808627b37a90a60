package landing

import "fmt"

// VehicleState is the vehicle's state at a given time. States are values:
// each integration step produces a new state and never mutates a prior one.
type VehicleState struct {
	Altitude float64 // meters above the surface
	Velocity float64 // m/s, negative means descending
	Time     float64 // seconds since the start of the maneuver
}

// String implements the Stringer interface.
func (s VehicleState) String() string {
	return fmt.Sprintf("t=%.2fs h=%.2fm v=%.2fm/s", s.Time, s.Altitude, s.Velocity)
}

// Trajectory is the chronologically ordered sequence of states of one
// maneuver. It is seeded with the initial state, so it is never empty.
type Trajectory struct {
	States []VehicleState
}

// NewTrajectory returns a trajectory seeded with the provided initial state.
func NewTrajectory(initial VehicleState) Trajectory {
	return Trajectory{States: []VehicleState{initial}}
}

// Append adds a state to the trajectory.
func (t *Trajectory) Append(s VehicleState) {
	t.States = append(t.States, s)
}

// Final returns the last state of the trajectory.
func (t Trajectory) Final() VehicleState {
	return t.States[len(t.States)-1]
}

// Len returns the number of states in the trajectory.
func (t Trajectory) Len() int {
	return len(t.States)
}
