// Package selection provides variable-subset-selection search strategies
// for model fitting: exhaustive search, forward selection, and backward
// elimination.
//
// The package does not train or score models itself. Callers inject two
// functions: a trainer that fits a model on a subset of variables, and a
// scorer that maps a fitted model to a real number where lower is better
// (an information criterion, a validation error, or any comparable
// quality measure). The model type is a type parameter and is never
// inspected by the search.
//
// # Exhaustive Search
//
// ExhaustiveSearch evaluates every combination of every size and reports
// the best subset of each size:
//
//	results, err := selection.ExhaustiveSearch(variables,
//	    func(vars []string) (*linear.Regression, error) { ... },
//	    func(m *linear.Regression, vars []string) (float64, error) { ... },
//	)
//
// The cost is 2^n - 1 model fits for n variables; it is only practical
// for small candidate sets.
//
// # Greedy Elimination
//
// BackwardElimination starts from the full variable set and repeatedly
// drops the variable whose removal most improves the score, stopping as
// soon as keeping the current set beats every single removal:
//
//	model, vars, err := selection.BackwardElimination(variables, train, score,
//	    selection.WithVerbose(true),
//	)
//
// This costs O(n²) model fits. The stopping rule is local: once no single
// removal helps, the search halts even if removing two variables together
// would have scored better.
//
// ForwardSelection is provided for API compatibility with the utilities
// this package descends from; see its documentation for the caveat about
// its behavior.
package selection
