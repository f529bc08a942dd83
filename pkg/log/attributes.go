// Package log defines standard attribute keys for subset-search operations.
//
// Using these keys consistently makes search progress logs filterable:
// every round of a greedy elimination and every size of an exhaustive
// search is emitted with the same field names.
package log

// Search context
const (
	// AlgorithmKey identifies the search strategy emitting the record.
	// Standard values: "exhaustive_search", "forward_selection",
	// "backward_elimination".
	AlgorithmKey = "search.algorithm"

	// OperationKey specifies the operation being performed.
	// Standard values: "train", "score", "search".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	ComponentKey = "ml.component"
)

// Search progress
const (
	// RoundKey is the 1-based greedy elimination round number.
	RoundKey = "search.round"

	// SubsetSizeKey is the size of the subset currently under evaluation.
	SubsetSizeKey = "search.subset_size"

	// VariablesKey lists the variables in the current best set.
	VariablesKey = "search.variables"

	// VariableCountKey is the number of candidate variables.
	VariableCountKey = "search.variable_count"

	// CombinationsKey counts the combinations evaluated so far.
	CombinationsKey = "search.combinations"

	// ScoreKey is the score of the accepted step or best subset.
	// Lower is better throughout the library.
	ScoreKey = "search.score"

	// RemovedKey names the variable removed by the accepted step;
	// "none" marks the terminating no-removal step.
	RemovedKey = "search.removed"
)

// Performance
const (
	// DurationMsKey records the execution time of a search in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// ModelNameKey identifies the model type being trained, when known.
	ModelNameKey = "model.name"
)

// Standard attribute value constants.
const (
	AlgorithmExhaustive = "exhaustive_search"
	AlgorithmForward    = "forward_selection"
	AlgorithmBackward   = "backward_elimination"

	OperationTrain  = "train"
	OperationScore  = "score"
	OperationSearch = "search"
)
