// Package predictor holds the frozen text classifiers behind each task.
//
// A Predictor maps an ordered batch of samples to one label per sample, in
// the same order. Implementations must be safe for concurrent use once
// constructed; nothing in this package mutates a loaded model.
package predictor

import "context"

// Predictor classifies a batch of texts.
type Predictor interface {
	Predict(ctx context.Context, samples []string) ([]string, error)
}

// ConfidencePredictor is implemented by predictors that can report how sure
// they are of each label from the same scoring pass. Values are in [0, 1].
type ConfidencePredictor interface {
	Predictor
	PredictWithConfidence(ctx context.Context, samples []string) ([]string, []float64, error)
}

// Func adapts an ordinary function to the Predictor interface.
type Func func(ctx context.Context, samples []string) ([]string, error)

func (f Func) Predict(ctx context.Context, samples []string) ([]string, error) {
	return f(ctx, samples)
}
