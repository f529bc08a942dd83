package selection

import (
	"sort"
	"strings"

	"github.com/sokunmin/featselect/pkg/errors"
	"github.com/sokunmin/featselect/pkg/log"
)

// ForwardSelection selects variables by greedy elimination and returns
// the final model and the surviving variables.
//
// Despite the name, this does not grow a model from the empty set: it
// runs the same shrink-from-full routine as BackwardElimination, which
// matches the behavior of the utilities this package descends from. Use
// BackwardElimination directly in new code.
func ForwardSelection[M any](variables []string, train TrainFunc[M], score ScoreFunc[M], opts ...Option) (M, []string, error) {
	return eliminate(log.AlgorithmForward, variables, train, score, opts...)
}

// BackwardElimination starts from the full variable set and, each round,
// evaluates removing each remaining variable plus the option of removing
// none, keeping whichever yields the lowest score. It stops as soon as
// removing none wins, or when a single variable remains.
//
// Returns the model trained on the surviving set together with that set.
// Any error from train or score aborts the search immediately.
func BackwardElimination[M any](variables []string, train TrainFunc[M], score ScoreFunc[M], opts ...Option) (M, []string, error) {
	return eliminate(log.AlgorithmBackward, variables, train, score, opts...)
}

// eliminate is the greedy shrink-from-full routine shared by
// ForwardSelection and BackwardElimination.
func eliminate[M any](algorithm string, variables []string, train TrainFunc[M], score ScoreFunc[M], opts ...Option) (M, []string, error) {
	var zero M
	cfg := newSearchConfig(opts...)
	logger := cfg.logger.With(log.AlgorithmKey, algorithm)

	// Removal candidates are generated in sorted name order so that
	// tie-breaks are reproducible across runs.
	bestVariables := append([]string(nil), variables...)
	sort.Strings(bestVariables)

	bestModel, err := train(bestVariables)
	if err != nil {
		return zero, nil, errors.Wrapf(err, "train failed for starting set %v", bestVariables)
	}
	bestScore, err := score(bestModel, bestVariables)
	if err != nil {
		return zero, nil, errors.Wrapf(err, "score failed for starting set %v", bestVariables)
	}

	if cfg.verbose {
		logger.Info("search started",
			log.VariablesKey, strings.Join(variables, ", "),
			log.ScoreKey, bestScore,
		)
	}

	for round := 1; len(bestVariables) > 1; round++ {
		steps := make([]Step[M], 0, len(bestVariables)+1)
		// the no-removal step goes first so that ties resolve toward stopping
		steps = append(steps, Step[M]{Score: bestScore, Model: bestModel})

		for _, removeVar := range bestVariables {
			stepVars := without(bestVariables, removeVar)
			stepModel, err := train(stepVars)
			if err != nil {
				return zero, nil, errors.Wrapf(err, "round %d: train failed for subset %v", round, stepVars)
			}
			stepScore, err := score(stepModel, stepVars)
			if err != nil {
				return zero, nil, errors.Wrapf(err, "round %d: score failed for subset %v", round, stepVars)
			}
			steps = append(steps, Step[M]{Score: stepScore, Removed: removeVar, Model: stepModel})
		}

		sort.SliceStable(steps, func(i, j int) bool {
			return steps[i].Score < steps[j].Score
		})

		chosen := steps[0]
		bestScore = chosen.Score
		bestModel = chosen.Model

		if cfg.verbose {
			removed := chosen.Removed
			if removed == "" {
				removed = "none"
			}
			logger.Info("step",
				log.RoundKey, round,
				log.ScoreKey, bestScore,
				log.RemovedKey, removed,
			)
		}

		if chosen.Removed == "" {
			// removing any further variable is detrimental
			break
		}
		bestVariables = without(bestVariables, chosen.Removed)
	}

	return bestModel, bestVariables, nil
}

// without returns a copy of vars with the first occurrence of name removed.
func without(vars []string, name string) []string {
	out := make([]string, 0, len(vars)-1)
	removed := false
	for _, v := range vars {
		if !removed && v == name {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out
}
