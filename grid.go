package landing

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/matrix/mat64"
)

// GridRange defines a closed coefficient range swept at a fixed step.
type GridRange struct {
	Min, Max, Step float64
}

// Values returns the sampled values of the range, both ends included. A
// small tolerance absorbs the floating-point drift of repeated addition.
func (r GridRange) Values() []float64 {
	if r.Step <= 0 || r.Max < r.Min {
		return nil
	}
	n := int(math.Floor((r.Max-r.Min)/r.Step+1e-9)) + 1
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = r.Min + float64(i)*r.Step
	}
	return vals
}

// GridResult is the outcome of an exhaustive sweep of the coefficient grid.
type GridResult struct {
	Params  GuidanceParameters // coefficients of the minimum-cost cell
	Outcome Outcome            // trajectory of the minimum-cost cell
	Cost    float64
	// AnyLanded reports whether any cell of the whole sweep reached the
	// ground, not whether the best cell did: a sweep may find its cheapest
	// trajectory among aborted runs while some other cell landed.
	AnyLanded    bool
	VelocityGrid []float64
	HeightGrid   []float64
	Costs        *mat64.Dense // cost surface, rows follow VelocityGrid, columns HeightGrid
}

// GridSearch evaluates the simulator and cost for every combination of the
// two coefficient ranges and keeps the minimum-cost result. Cells are
// independent pure computations, so they are fanned out over the available
// CPUs; the reduction walks the grid row-major so that among equal minimal
// costs the first combination in iteration order wins, regardless of
// completion order.
func GridSearch(cfg ScenarioConfig, vRange, hRange GridRange, logger kitlog.Logger) (GridResult, error) {
	if err := cfg.Validate(); err != nil {
		return GridResult{}, err
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	vGrid := vRange.Values()
	hGrid := hRange.Values()
	if len(vGrid) == 0 || len(hGrid) == 0 {
		return GridResult{}, fmt.Errorf("empty coefficient grid (velocity %+v, height %+v)", vRange, hRange)
	}

	costs := mat64.NewDense(len(vGrid), len(hGrid), nil)
	outcomes := make([]Outcome, len(vGrid)*len(hGrid))
	cpuChan := make(chan bool, runtime.NumCPU())
	var wg sync.WaitGroup
	for i, vc := range vGrid {
		for j, hc := range hGrid {
			cpuChan <- true
			wg.Add(1)
			go func(i, j int, params GuidanceParameters) {
				defer wg.Done()
				outcome, _ := Simulate(cfg, params) // config already validated
				costs.Set(i, j, LandingCost(outcome.Trajectory))
				outcomes[i*len(hGrid)+j] = outcome
				<-cpuChan
			}(i, j, GuidanceParameters{VelocityChange: vc, HeightChange: hc})
		}
	}
	wg.Wait()

	rslt := GridResult{
		Cost:         math.Inf(1),
		VelocityGrid: vGrid,
		HeightGrid:   hGrid,
		Costs:        costs,
	}
	for i, vc := range vGrid {
		for j, hc := range hGrid {
			outcome := outcomes[i*len(hGrid)+j]
			if outcome.Landed() {
				rslt.AnyLanded = true
			}
			if cost := costs.At(i, j); cost < rslt.Cost {
				rslt.Cost = cost
				rslt.Params = GuidanceParameters{VelocityChange: vc, HeightChange: hc}
				rslt.Outcome = outcome
			}
		}
	}
	logger.Log("level", "info", "subsys", "grid", "cells", len(vGrid)*len(hGrid),
		"cost", rslt.Cost, "dv", rslt.Params.VelocityChange, "dh", rslt.Params.HeightChange,
		"status", rslt.Outcome.Status, "anyLanded", rslt.AnyLanded)
	return rslt, nil
}
