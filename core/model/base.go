// Package model holds the shared state machinery embedded by trainable
// models in this library.
package model

// State represents the training state of a model.
type State int

const (
	// NotFitted marks a model that has not been trained yet.
	NotFitted State = iota
	// Fitted marks a trained model.
	Fitted
)

// Base is embedded by trainable models to track their fitted state.
type Base struct {
	state State
}

// IsFitted reports whether the model has been trained.
func (b *Base) IsFitted() bool {
	return b.state == Fitted
}

// SetFitted marks the model as trained.
func (b *Base) SetFitted() {
	b.state = Fitted
}

// Reset returns the model to its untrained state.
func (b *Base) Reset() {
	b.state = NotFitted
}
