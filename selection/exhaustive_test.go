package selection

import (
	"math"
	"strings"
	"testing"

	"github.com/sokunmin/featselect/pkg/errors"
)

// weightScorer builds a train/score pair where the score of a subset is
// the negated sum of fixed per-variable weights, so lower scores mean
// higher total weight.
func weightScorer(weights map[string]float64) (TrainFunc[string], ScoreFunc[string]) {
	train := func(variables []string) (string, error) {
		return "Model-" + strings.Join(variables, ""), nil
	}
	score := func(_ string, variables []string) (float64, error) {
		var sum float64
		for _, v := range variables {
			sum += weights[v]
		}
		return -sum, nil
	}
	return train, score
}

var testWeights = map[string]float64{"a": 4, "b": 2, "c": -2, "d": 3, "e": -1}

func TestExhaustiveSearchCompleteness(t *testing.T) {
	variables := []string{"a", "b", "c", "d", "e"}
	trainCalls := 0

	train, score := weightScorer(testWeights)
	countingTrain := func(vars []string) (string, error) {
		trainCalls++
		return train(vars)
	}

	results, err := ExhaustiveSearch(variables, countingTrain, score)
	if err != nil {
		t.Fatalf("ExhaustiveSearch() error: %v", err)
	}

	// 2^5 - 1 combinations across all sizes
	if trainCalls != 31 {
		t.Errorf("train calls = %d, want 31", trainCalls)
	}
	if len(results) != len(variables) {
		t.Fatalf("got %d results, want %d", len(results), len(variables))
	}
	for i, res := range results {
		wantN := i + 1
		if res.N != wantN {
			t.Errorf("results[%d].N = %d, want %d", i, res.N, wantN)
		}
		if len(res.Variables) != wantN {
			t.Errorf("results[%d] has %d variables, want %d", i, len(res.Variables), wantN)
		}
	}
}

// bruteForceBest is deliberately recursive, unlike the production
// generator, so the two enumerations cannot share a bug.
func bruteForceBest(variables []string, k int, scoreOf func([]string) float64) float64 {
	best := math.Inf(1)
	var recurse func(start int, chosen []string)
	recurse = func(start int, chosen []string) {
		if len(chosen) == k {
			if s := scoreOf(chosen); s < best {
				best = s
			}
			return
		}
		for i := start; i < len(variables); i++ {
			recurse(i+1, append(chosen, variables[i]))
		}
	}
	recurse(0, nil)
	return best
}

func TestExhaustiveSearchOptimalityPerSize(t *testing.T) {
	variables := []string{"a", "b", "c", "d", "e"}
	train, score := weightScorer(testWeights)

	scoreOf := func(vars []string) float64 {
		var sum float64
		for _, v := range vars {
			sum += testWeights[v]
		}
		return -sum
	}

	results, err := ExhaustiveSearch(variables, train, score)
	if err != nil {
		t.Fatalf("ExhaustiveSearch() error: %v", err)
	}

	for _, res := range results {
		want := bruteForceBest(variables, res.N, scoreOf)
		if res.Score != want {
			t.Errorf("size %d: score = %v, want %v", res.N, res.Score, want)
		}
	}

	// spot-check the winning subsets themselves
	wantBySize := map[int][]string{
		1: {"a"},
		2: {"a", "d"},
		3: {"a", "b", "d"},
		4: {"a", "b", "d", "e"},
		5: {"a", "b", "c", "d", "e"},
	}
	for _, res := range results {
		want := wantBySize[res.N]
		if !equalStrings(res.Variables, want) {
			t.Errorf("size %d: variables = %v, want %v", res.N, res.Variables, want)
		}
	}
}

func TestExhaustiveSearchFirstSeenTieBreak(t *testing.T) {
	variables := []string{"b", "a", "c"}
	train := func(vars []string) (int, error) { return len(vars), nil }
	score := func(_ int, _ []string) (float64, error) { return 0, nil }

	results, err := ExhaustiveSearch(variables, train, score)
	if err != nil {
		t.Fatalf("ExhaustiveSearch() error: %v", err)
	}

	// all scores tie, so the first-enumerated combination of each size wins
	if !equalStrings(results[0].Variables, []string{"b"}) {
		t.Errorf("size 1 winner = %v, want [b]", results[0].Variables)
	}
	if !equalStrings(results[1].Variables, []string{"b", "a"}) {
		t.Errorf("size 2 winner = %v, want [b a]", results[1].Variables)
	}
}

func TestExhaustiveSearchEmptyVariables(t *testing.T) {
	train := func(vars []string) (int, error) { return 0, nil }
	score := func(_ int, _ []string) (float64, error) { return 0, nil }

	_, err := ExhaustiveSearch(nil, train, score)
	if err == nil {
		t.Fatal("expected error for empty variables")
	}

	var valErr *errors.ValueError
	if !errors.As(err, &valErr) {
		t.Errorf("error = %v, want *ValueError", err)
	}
}

func TestExhaustiveSearchPropagatesCallbackErrors(t *testing.T) {
	variables := []string{"a", "b"}
	trainErr := errors.New("train exploded")

	t.Run("train failure", func(t *testing.T) {
		train := func(vars []string) (int, error) {
			if len(vars) == 2 {
				return 0, trainErr
			}
			return len(vars), nil
		}
		score := func(_ int, _ []string) (float64, error) { return 0, nil }

		_, err := ExhaustiveSearch(variables, train, score)
		if !errors.Is(err, trainErr) {
			t.Errorf("error = %v, want chain containing the train error", err)
		}
	})

	t.Run("score failure", func(t *testing.T) {
		scoreErr := errors.New("score exploded")
		train := func(vars []string) (int, error) { return len(vars), nil }
		score := func(_ int, _ []string) (float64, error) { return 0, scoreErr }

		_, err := ExhaustiveSearch(variables, train, score)
		if !errors.Is(err, scoreErr) {
			t.Errorf("error = %v, want chain containing the score error", err)
		}
	})
}

func TestExhaustiveSearchPairsTrainerAndScorer(t *testing.T) {
	variables := []string{"a", "b", "c"}

	// the model remembers the subset it was trained on; the scorer
	// verifies it is handed exactly that subset
	train := func(vars []string) (string, error) {
		return strings.Join(vars, ","), nil
	}
	score := func(m string, vars []string) (float64, error) {
		if m != strings.Join(vars, ",") {
			t.Errorf("scorer got variables %v for model trained on %q", vars, m)
		}
		return float64(len(vars)), nil
	}

	if _, err := ExhaustiveSearch(variables, train, score); err != nil {
		t.Fatalf("ExhaustiveSearch() error: %v", err)
	}
}

func equalStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
