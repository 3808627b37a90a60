package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime"

	landing "github.com/ebai03/rocket-landing-simul"
	kitlog "github.com/go-kit/kit/log"
)

var (
	scenario    string
	output      string
	cpus        int
	population  int
	generations int
	seed        int64
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", "scenarios/moon.toml", "scenario TOML file")
	flag.StringVar(&output, "output", "", "write the best trajectory CSV to this file")
	flag.IntVar(&cpus, "cpus", -1, "number of CPUs to use (set to 0 for max CPUs)")
	flag.IntVar(&population, "population", 20, "number of individuals per generation")
	flag.IntVar(&generations, "generations", 50, "number of generations to evolve")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
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
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "cmd", "evolve")

	rslt, err := landing.GeneticSearch(cfg, population, generations, rng, klog)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	final := rslt.Outcome.Trajectory.Final()
	log.Printf("[info] best: dv=%.4f dh=%.4f cost=%.4f", rslt.Params.VelocityChange, rslt.Params.HeightChange, rslt.Cost)
	log.Printf("[info] touchdown after %.4f s at %.4f m/s (%s)", final.Time, final.Velocity, rslt.Outcome.Status)

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			log.Fatalf("[error] %s", err)
		}
		defer f.Close()
		if err := landing.WriteTrajectoryCSV(f, rslt.Outcome.Trajectory); err != nil {
			log.Fatalf("[error] %s", err)
		}
		log.Printf("[info] best trajectory written to %s", output)
	}
}
