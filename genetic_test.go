package landing

import (
	"math"
	"math/rand"
	"testing"
)

func TestGeneticSearchReferenceScenario(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rslt, err := GeneticSearch(refConfig(), 16, 10, rng, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !rslt.Outcome.Landed() {
		t.Fatalf("the reference scenario should evolve a landing, got %s", rslt.Outcome.Status)
	}
	if math.IsInf(rslt.Cost, 0) || math.IsNaN(rslt.Cost) || rslt.Cost < 0 {
		t.Fatalf("implausible best cost %f", rslt.Cost)
	}
	if len(rslt.History) != 10 {
		t.Fatalf("expected one history entry per generation, got %d", len(rslt.History))
	}
}

func TestGeneticSearchBestNonIncreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rslt, err := GeneticSearch(refConfig(), 12, 15, rng, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(rslt.History); i++ {
		if rslt.History[i] > rslt.History[i-1] {
			t.Fatalf("tracked best grew from %f to %f at generation %d", rslt.History[i-1], rslt.History[i], i+1)
		}
	}
	if rslt.Cost != rslt.History[len(rslt.History)-1] {
		t.Fatalf("final cost %f differs from last history entry %f", rslt.Cost, rslt.History[len(rslt.History)-1])
	}
}

func TestGeneticSearchDeterministicWithSeed(t *testing.T) {
	run := func() GeneticResult {
		rng := rand.New(rand.NewSource(1234))
		rslt, err := GeneticSearch(refConfig(), 10, 6, rng, nil)
		if err != nil {
			t.Fatal(err)
		}
		return rslt
	}
	a, b := run(), run()
	if a.Cost != b.Cost || a.Params != b.Params {
		t.Fatalf("seeded runs diverged: %+v (%f) vs %+v (%f)", a.Params, a.Cost, b.Params, b.Cost)
	}
}

func TestGeneticSearchInvalidArguments(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := GeneticSearch(refConfig(), 1, 5, rng, nil); err == nil {
		t.Fatal("a population of one cannot reproduce")
	}
	if _, err := GeneticSearch(refConfig(), 10, 0, rng, nil); err == nil {
		t.Fatal("zero generations must be rejected")
	}
	cfg := refConfig()
	cfg.TimeStep = -1
	if _, err := GeneticSearch(cfg, 10, 5, rng, nil); err == nil {
		t.Fatal("an invalid scenario must be rejected before evolving")
	}
}
