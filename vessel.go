package landing

import (
	"errors"
	"math"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// ErrUnpowered is returned when the vessel reports no available thrust: the
// maneuver cannot proceed, whether the engines are out or the stage is gone.
var ErrUnpowered = errors.New("vessel has no active propulsion")

// VesselState is one telemetry sample from a live vehicle.
type VesselState struct {
	Altitude  float64       // meters above the surface, >= 0
	Velocity  float64       // m/s, negative means descending
	Mass      float64       // kg, current vehicle mass
	MaxThrust float64       // Newtons available right now, 0 means no propulsion
	Body      CelestialBody // body being landed onto
}

// Vessel is the capability interface any live or simulated vehicle adapter
// implements: supply telemetry and hold a commanded throttle until told
// otherwise.
type Vessel interface {
	ReadState() (VesselState, error)
	// SetThrottle commands a throttle fraction in [0, 1].
	SetThrottle(fraction float64) error
}

// Lander drives a vessel through the descent guidance law in real time. The
// loop is decision-driven rather than fixed-step: each cycle reads
// telemetry, picks the thrust tier, burns for the computed duration, then
// coasts for the cycle interval.
type Lander struct {
	vessel      Vessel
	params      GuidanceParameters
	finalHeight float64       // altitude at which the maneuver is declared done
	cycle       time.Duration // pause between guidance decisions
	logger      kitlog.Logger
	sleep       func(time.Duration) // swapped out in tests
}

// NewLander returns a lander for the provided vessel and coefficients. The
// maneuver stops once the vessel reports an altitude at or below finalHeight.
func NewLander(v Vessel, params GuidanceParameters, finalHeight float64, cycle time.Duration, logger kitlog.Logger) *Lander {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &Lander{
		vessel:      v,
		params:      params,
		finalHeight: finalHeight,
		cycle:       cycle,
		logger:      logger,
		sleep:       time.Sleep,
	}
}

// Land runs the bounded polling loop until the vessel reaches the final
// height. The throttle is zeroed on every exit path. It returns ErrUnpowered
// if the vessel reports no available thrust, or the vessel's own error if
// telemetry or actuation fails.
func (l *Lander) Land() error {
	defer l.vessel.SetThrottle(0)
	for {
		st, err := l.vessel.ReadState()
		if err != nil {
			return err
		}
		if st.MaxThrust == 0 {
			l.logger.Log("level", "critical", "subsys", "lander", "status", "unpowered", "alt(m)", st.Altitude)
			return ErrUnpowered
		}
		if st.Altitude <= l.finalHeight {
			l.logger.Log("level", "notice", "subsys", "lander", "status", "touchdown",
				"alt(m)", st.Altitude, "v(m/s)", st.Velocity)
			return nil
		}

		g := st.Body.Gravity(st.Altitude)
		// Mass and available thrust change as fuel burns, so the controller
		// is rebuilt from fresh telemetry every cycle.
		ctl := &controller{params: l.params, maxAccel: st.MaxThrust / st.Mass}
		thrust, _, targetV := ctl.decide(st.Altitude, st.Velocity, g, l.cycle.Seconds())

		if thrust > 0 {
			// From v_f = v_i + a*t: how long to burn at this tier to bring
			// the descent rate down to the target.
			burn := (math.Abs(st.Velocity) - math.Abs(targetV)) / math.Abs(thrust)
			if burn < 0 {
				burn = 0
			}
			fraction := clamp01(thrust / ctl.maxAccel)
			if err := l.vessel.SetThrottle(fraction); err != nil {
				return err
			}
			l.logger.Log("level", "debug", "subsys", "lander", "alt(m)", st.Altitude,
				"v(m/s)", st.Velocity, "throttle", fraction, "burn(s)", burn)
			l.sleep(time.Duration(burn * float64(time.Second)))
			if err := l.vessel.SetThrottle(0); err != nil {
				return err
			}
		}
		l.sleep(l.cycle)
	}
}
