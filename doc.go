// Package featselect provides variable-subset-selection search strategies
// for statistical and predictive model fitting in Go.
//
// The library explores the space of variable subsets with three
// strategies — exhaustive search, forward selection, and backward
// elimination — driven by two caller-supplied functions: a trainer that
// fits a model on a subset and a scorer that ranks fitted models (lower
// is better).
//
// # Packages
//
//   - selection: the search algorithms and their callback contracts
//   - metrics: regression metrics and information-criterion scores
//     (AIC, BIC, adjusted R²) ready to use as scorers
//   - linear: an ordinary least squares model for driving the searches
//     over real data
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/sokunmin/featselect/selection"
//	)
//
//	func main() {
//	    weights := map[string]float64{"a": 4, "b": 2, "c": -2, "d": 3, "e": -1}
//
//	    train := func(vars []string) (struct{}, error) { return struct{}{}, nil }
//	    score := func(_ struct{}, vars []string) (float64, error) {
//	        var sum float64
//	        for _, v := range vars {
//	            sum += weights[v]
//	        }
//	        return -sum, nil
//	    }
//
//	    _, best, err := selection.BackwardElimination(
//	        []string{"a", "b", "c", "d", "e"}, train, score)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(best) // [a b d]
//	}
//
// See the examples directory for runnable demos, including an exhaustive
// search over a least-squares regression scored by AIC.
package featselect
