package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	landing "github.com/ebai03/rocket-landing-simul"
	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

var (
	scenario string
	output   string
	cpus     int
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", "scenarios/moon.toml", "scenario TOML file")
	flag.StringVar(&output, "output", "", "write the cost surface CSV to this file")
	flag.IntVar(&cpus, "cpus", -1, "number of CPUs to use (set to 0 for max CPUs)")
}

// gridRange reads one [grid.*] table, falling back to the provided defaults.
func gridRange(key string, def landing.GridRange) landing.GridRange {
	if !viper.IsSet(key) {
		return def
	}
	return landing.GridRange{
		Min:  viper.GetFloat64(key + ".min"),
		Max:  viper.GetFloat64(key + ".max"),
		Step: viper.GetFloat64(key + ".step"),
	}
}

func main() {
	flag.Parse()
	availableCPUs := runtime.NumCPU()
	if cpus <= 0 || cpus > availableCPUs {
		cpus = availableCPUs
	}
	runtime.GOMAXPROCS(cpus)
	log.Printf("[info] running on %d CPUs\n", cpus)

	cfg, err := landing.LoadScenario(scenario)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	vRange := gridRange("grid.velocity", landing.GridRange{Min: 0, Max: 0.99, Step: 0.01})
	hRange := gridRange("grid.height", landing.GridRange{Min: 1, Max: 1.99, Step: 0.01})

	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "cmd", "gridsearch")

	rslt, err := landing.GridSearch(cfg, vRange, hRange, klog)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	final := rslt.Outcome.Trajectory.Final()
	if rslt.AnyLanded {
		log.Println("[info] at least one combination achieved a landing")
	} else {
		log.Println("[warning] no combination achieved a landing")
	}
	log.Printf("[info] best: dv=%.4f dh=%.4f cost=%.4f", rslt.Params.VelocityChange, rslt.Params.HeightChange, rslt.Cost)
	log.Printf("[info] touchdown after %.4f s at %.4f m/s (%s)", final.Time, final.Velocity, rslt.Outcome.Status)

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			log.Fatalf("[error] %s", err)
		}
		defer f.Close()
		if err := landing.WriteGridCSV(f, rslt); err != nil {
			log.Fatalf("[error] %s", err)
		}
		log.Printf("[info] cost surface written to %s", output)
	}
}
