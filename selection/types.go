package selection

// TrainFunc fits a model on the given subset of variables. The search
// passes each subset exactly once to the trainer and hands the resulting
// model, untouched, to the paired ScoreFunc call.
type TrainFunc[M any] func(variables []string) (M, error)

// ScoreFunc scores a fitted model. Lower is better. The variables slice
// is exactly the one the paired TrainFunc call received. For reproducible
// searches the scorer must be a deterministic function of its inputs.
type ScoreFunc[M any] func(model M, variables []string) (float64, error)

// Step records the outcome of one candidate move in a greedy elimination
// round: either keeping the current set (Removed empty) or retraining
// with one variable removed.
type Step[M any] struct {
	Score   float64
	Removed string
	Model   M
}

// ExhaustiveResult is the best-scoring subset of exactly N variables
// found by ExhaustiveSearch.
type ExhaustiveResult[M any] struct {
	N         int
	Variables []string
	Score     float64
	Model     M
}
