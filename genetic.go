package landing

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

const (
	// survivorFraction is the truncation-selection share kept as parents.
	survivorFraction = 2 // top 1/2 of each generation
	// mutationRate is the probability of perturbing a child.
	mutationRate = 0.1
	// mutationSpan is the half-width of the uniform additive perturbation.
	mutationSpan = 0.1
)

// Individual pairs guidance coefficients with their evaluated cost. It only
// exists transiently, for sorting a generation.
type Individual struct {
	Params  GuidanceParameters
	Cost    float64
	Outcome Outcome
}

// GeneticResult is the best solution found by an evolutionary run.
type GeneticResult struct {
	Params  GuidanceParameters
	Outcome Outcome
	Cost    float64
	// History is the best cost seen up to and including each generation.
	// It is non-increasing by construction.
	History []float64
}

// GeneticSearch evolves a population of coefficient pairs against the
// simulator and cost oracle: truncation selection of the top half,
// arithmetic-mean crossover of two parents drawn uniformly with replacement,
// and a low-probability additive mutation. Mutated genes may drift outside
// the nominal [0,1] and [1,2] domains; the simulator tolerates that, and the
// drift is deliberately not clamped back.
//
// The rng drives every random draw, so a seeded source makes the run
// deterministic. A nil rng gets seeded from the wall clock.
func GeneticSearch(cfg ScenarioConfig, populationSize, generations int, rng *rand.Rand, logger kitlog.Logger) (GeneticResult, error) {
	if err := cfg.Validate(); err != nil {
		return GeneticResult{}, err
	}
	if populationSize < 2 {
		return GeneticResult{}, fmt.Errorf("population size must be at least 2, got %d", populationSize)
	}
	if generations < 1 {
		return GeneticResult{}, fmt.Errorf("generation count must be positive, got %d", generations)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}

	population := make([]GuidanceParameters, populationSize)
	for i := range population {
		population[i] = GuidanceParameters{
			VelocityChange: rng.Float64(),
			HeightChange:   1 + rng.Float64(),
		}
	}

	best := GeneticResult{Cost: math.Inf(1)}
	for gen := 0; gen < generations; gen++ {
		evals := evaluatePopulation(cfg, population)
		sort.SliceStable(evals, func(i, j int) bool { return evals[i].Cost < evals[j].Cost })

		if evals[0].Cost < best.Cost {
			best.Cost = evals[0].Cost
			best.Params = evals[0].Params
			best.Outcome = evals[0].Outcome
		}
		best.History = append(best.History, best.Cost)
		logger.Log("level", "debug", "subsys", "ga", "generation", gen+1, "of", generations,
			"genBest", evals[0].Cost, "best", best.Cost)

		survivors := make([]GuidanceParameters, populationSize/survivorFraction)
		for i := range survivors {
			survivors[i] = evals[i].Params
		}
		population = population[:0]
		population = append(population, survivors...)
		for len(population) < populationSize {
			father := survivors[rng.Intn(len(survivors))]
			mother := survivors[rng.Intn(len(survivors))]
			child := GuidanceParameters{
				VelocityChange: (father.VelocityChange + mother.VelocityChange) / 2,
				HeightChange:   (father.HeightChange + mother.HeightChange) / 2,
			}
			if rng.Float64() < mutationRate {
				child.VelocityChange += uniform(rng, -mutationSpan, mutationSpan)
				child.HeightChange += uniform(rng, -mutationSpan, mutationSpan)
			}
			population = append(population, child)
		}
	}
	logger.Log("level", "info", "subsys", "ga", "status", "finished", "cost", best.Cost,
		"dv", best.Params.VelocityChange, "dh", best.Params.HeightChange, "landing", best.Outcome.Status)
	return best, nil
}

// evaluatePopulation simulates every individual concurrently. The result
// slice is indexed like the population, so the caller's ordering does not
// depend on completion order.
func evaluatePopulation(cfg ScenarioConfig, population []GuidanceParameters) []Individual {
	evals := make([]Individual, len(population))
	cpuChan := make(chan bool, runtime.NumCPU())
	var wg sync.WaitGroup
	for i, params := range population {
		cpuChan <- true
		wg.Add(1)
		go func(i int, params GuidanceParameters) {
			defer wg.Done()
			outcome, _ := Simulate(cfg, params) // config already validated
			evals[i] = Individual{Params: params, Cost: LandingCost(outcome.Trajectory), Outcome: outcome}
			<-cpuChan
		}(i, params)
	}
	wg.Wait()
	return evals
}

// uniform returns a draw from [min, max).
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
