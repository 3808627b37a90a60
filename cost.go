package landing

import "math"

// LandingCost maps a completed trajectory to a scalar landing quality score,
// lower is better. Only the final state matters: the landing time plus twice
// the impact speed, so a hard touchdown is penalized twice as heavily as a
// slow descent.
func LandingCost(traj Trajectory) float64 {
	final := traj.Final()
	return final.Time + 2*math.Abs(final.Velocity)
}
