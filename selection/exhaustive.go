package selection

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/sokunmin/featselect/pkg/errors"
)

// ExhaustiveSearch evaluates every combination of each size from 1 to
// len(variables) and returns the best-scoring subset of each size, in
// increasing order of size.
//
// Combinations are enumerated in lexicographic order of input positions,
// and ties are broken in favor of the earliest-enumerated subset. The
// total number of model fits is 2^n - 1 for n variables.
//
// Returns a ValueError if variables is empty. Any error from train or
// score aborts the search immediately; partial results are discarded.
func ExhaustiveSearch[M any](variables []string, train TrainFunc[M], score ScoreFunc[M]) ([]ExhaustiveResult[M], error) {
	if len(variables) == 0 {
		return nil, errors.NewValueError("ExhaustiveSearch", "variables must not be empty")
	}

	results := make([]ExhaustiveResult[M], 0, len(variables))
	for n := 1; n <= len(variables); n++ {
		gen := combin.NewCombinationGenerator(len(variables), n)
		indices := make([]int, n)

		var best ExhaustiveResult[M]
		found := false
		for gen.Next() {
			gen.Combination(indices)
			subset := make([]string, n)
			for i, idx := range indices {
				subset[i] = variables[idx]
			}

			subsetModel, err := train(subset)
			if err != nil {
				return nil, errors.Wrapf(err, "train failed for subset %v", subset)
			}
			subsetScore, err := score(subsetModel, subset)
			if err != nil {
				return nil, errors.Wrapf(err, "score failed for subset %v", subset)
			}

			// strict comparison keeps the first-seen subset on ties
			if !found || best.Score > subsetScore {
				best = ExhaustiveResult[M]{
					N:         n,
					Variables: subset,
					Score:     subsetScore,
					Model:     subsetModel,
				}
				found = true
			}
		}
		results = append(results, best)
	}
	return results, nil
}
