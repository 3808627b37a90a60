package main

import (
	"flag"
	"log"
	"os"
	"sync"
	"time"

	landing "github.com/ebai03/rocket-landing-simul"
	kitlog "github.com/go-kit/kit/log"
)

var (
	scenario    string
	output      string
	finalHeight float64
	cycle       time.Duration
	timeFactor  float64
	dv, dh      float64
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", "scenarios/moon.toml", "scenario TOML file")
	flag.StringVar(&output, "output", "", "stream the telemetry CSV to this file")
	flag.Float64Var(&finalHeight, "final", 3, "altitude in meters at which the maneuver stops")
	flag.DurationVar(&cycle, "cycle", 50*time.Millisecond, "pause between guidance decisions")
	flag.Float64Var(&timeFactor, "timefactor", 10, "how much faster than wall clock the vessel physics run")
	flag.Float64Var(&dv, "dv", 0.5, "velocity change guidance coefficient")
	flag.Float64Var(&dh, "dh", 1.5, "height change guidance coefficient")
}

// simVessel is a simulated vehicle adapter: it holds the commanded throttle
// and integrates its own state over the wall-clock time elapsed between
// telemetry reads, sped up by timeFactor.
type simVessel struct {
	mu        sync.Mutex
	state     landing.VesselState
	throttle  float64
	lastRead  time.Time
	stateChan chan<- landing.VehicleState
	elapsed   float64
}

func newSimVessel(cfg landing.ScenarioConfig, stateChan chan<- landing.VehicleState) *simVessel {
	return &simVessel{
		state: landing.VesselState{
			Altitude:  cfg.InitialHeight,
			Velocity:  cfg.InitialVelocity,
			Mass:      cfg.VehicleMass,
			MaxThrust: cfg.MaxThrust,
			Body:      cfg.Body,
		},
		lastRead:  time.Now(),
		stateChan: stateChan,
	}
}

// ReadState implements the landing.Vessel interface.
func (v *simVessel) ReadState() (landing.VesselState, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.advance(time.Since(v.lastRead).Seconds() * timeFactor)
	v.lastRead = time.Now()
	if v.stateChan != nil {
		v.stateChan <- landing.VehicleState{Altitude: v.state.Altitude, Velocity: v.state.Velocity, Time: v.elapsed}
	}
	return v.state, nil
}

// SetThrottle implements the landing.Vessel interface.
func (v *simVessel) SetThrottle(fraction float64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.advance(time.Since(v.lastRead).Seconds() * timeFactor)
	v.lastRead = time.Now()
	v.throttle = fraction
	return nil
}

// advance integrates the vessel physics over dt seconds with the held
// throttle.
func (v *simVessel) advance(dt float64) {
	const step = 0.001
	for dt > 0 && v.state.Altitude > 0 {
		h := step
		if dt < h {
			h = dt
		}
		accel := v.state.Body.Gravity(v.state.Altitude) + v.throttle*v.state.MaxThrust/v.state.Mass
		v.state.Velocity += accel * h
		v.state.Altitude += v.state.Velocity * h
		v.elapsed += h
		dt -= h
	}
	if v.state.Altitude < 0 {
		v.state.Altitude = 0
	}
}

func main() {
	flag.Parse()
	cfg, err := landing.LoadScenario(scenario)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}

	var stateChan chan landing.VehicleState
	var wg sync.WaitGroup
	if output != "" {
		f, cerr := os.Create(output)
		if cerr != nil {
			log.Fatalf("[error] %s", cerr)
		}
		defer f.Close()
		stateChan = make(chan landing.VehicleState, 100)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if serr := landing.StreamTrajectory(f, stateChan); serr != nil {
				log.Printf("[error] telemetry stream: %s", serr)
			}
		}()
	}

	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "cmd", "lander")

	vessel := newSimVessel(cfg, stateChan)
	params := landing.GuidanceParameters{VelocityChange: dv, HeightChange: dh}
	lander := landing.NewLander(vessel, params, finalHeight, cycle, klog)
	err = lander.Land()
	if stateChan != nil {
		close(stateChan)
		wg.Wait()
	}
	if err != nil {
		log.Fatalf("[error] maneuver failed: %s", err)
	}
	log.Println("[info] maneuver completed")
}
