package landing

import "math"

/* Handles the powered vertical-descent propagation. */

// GuidanceParameters are the two sensitivity coefficients shaping the
// deceleration law. They are owned by the optimizers and passed by value
// into every simulation.
type GuidanceParameters struct {
	VelocityChange float64 // scales the target terminal velocity, nominally in [0,1]
	HeightChange   float64 // margin on the stopping distance, nominally in [1,2]
}

// LandingStatus defines an enum of terminal maneuver statuses.
type LandingStatus uint8

const (
	// StatusLanded means the maneuver ended with the vehicle on the ground.
	StatusLanded LandingStatus = iota + 1
	// StatusAborted means the safety time limit was exceeded before touchdown.
	StatusAborted
	// StatusUnpowered means the vehicle had no active propulsion to maneuver with.
	StatusUnpowered
)

func (s LandingStatus) String() string {
	switch s {
	case StatusLanded:
		return "landed"
	case StatusAborted:
		return "aborted"
	case StatusUnpowered:
		return "unpowered"
	}
	panic("cannot stringify unknown landing status")
}

// Outcome is the result of one simulated maneuver. The status is explicit
// and travels with the trajectory, never through shared state.
type Outcome struct {
	Trajectory Trajectory
	Status     LandingStatus
}

// Landed returns whether the maneuver ended by reaching the ground.
func (o Outcome) Landed() bool {
	return o.Status == StatusLanded
}

// controller selects the thrust tier for one guidance cycle. The available
// deceleration starts at max thrust over vehicle mass and is refined in
// place whenever the overshoot guard fires, so it must persist across the
// steps of a single maneuver.
type controller struct {
	params   GuidanceParameters
	maxAccel float64 // m/s^2, mutated by the overshoot guard
}

// decide returns the thrust tier (a deceleration magnitude opposing
// gravity), the net acceleration for the step and the target terminal
// velocity, given the current altitude, velocity, local gravity and the
// decision interval.
func (c *controller) decide(h, v, g, dt float64) (thrust, accel, targetV float64) {
	// From v_f^2 = v_i^2 + 2*a*d with v_f = 0: the distance needed to stop
	// at full deceleration.
	requiredDistance := -v * v / (2 * (c.maxAccel + g))
	// Same relation again, now for the velocity reached at the surface in
	// free descent, scaled down by the velocity coefficient.
	targetV = -math.Sqrt(v*v+2*-g*h) * c.params.VelocityChange

	switch {
	case h <= requiredDistance*c.params.HeightChange:
		// Within stopping range plus margin, decelerate at maximum.
		thrust = c.maxAccel
	case v < targetV:
		// Descending faster than the target, decelerate less.
		thrust = 0.8 * c.maxAccel
	default:
		thrust = 0
	}
	accel = thrust + g

	// If this step would push the vehicle into ascent, redirect the thrust
	// along the velocity error instead. A zero error yields no adjustment.
	if v+accel*dt > 0 {
		accel = g + thrust*sign(targetV-v)
		// Shrink the available deceleration for finer tier switching on the
		// remaining steps.
		c.maxAccel = c.maxAccel / -g
	}
	return
}

// Simulate advances the vehicle state from the scenario's initial conditions
// to touchdown or abort with the provided guidance coefficients, using
// fixed-step integration. It returns an error only for an invalid
// configuration; a divergent run comes back as an aborted outcome.
func Simulate(cfg ScenarioConfig, params GuidanceParameters) (Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return Outcome{}, err
	}
	state := VehicleState{Altitude: cfg.InitialHeight, Velocity: cfg.InitialVelocity}
	traj := NewTrajectory(state)
	if cfg.MaxThrust == 0 {
		return Outcome{traj, StatusUnpowered}, nil
	}

	ctl := &controller{params: params, maxAccel: cfg.MaxThrust / cfg.VehicleMass}
	dt := cfg.TimeStep
	for {
		if state.Altitude <= 0 {
			return Outcome{traj, StatusLanded}, nil
		}
		if state.Time > cfg.SafetyTimeLimit {
			return Outcome{traj, StatusAborted}, nil
		}
		g := cfg.Body.Gravity(state.Altitude)
		_, accel, _ := ctl.decide(state.Altitude, state.Velocity, g, dt)

		velocity := state.Velocity + accel*dt
		state = VehicleState{
			Altitude: state.Altitude + velocity*dt,
			Velocity: velocity,
			Time:     state.Time + dt,
		}
		traj.Append(state)
	}
}
