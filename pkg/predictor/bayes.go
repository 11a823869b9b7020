package predictor

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"
)

// NaiveBayes is a frozen multinomial naive-Bayes classifier.
type NaiveBayes struct {
	name     string
	classes  []string
	prior    []float64
	features map[string][]float64
	analyzer Analyzer
}

var (
	_ Predictor        = (*NaiveBayes)(nil)
	_ ConfidencePredictor = (*NaiveBayes)(nil)
)

// NewNaiveBayes builds a classifier from a validated artifact. The artifact's
// slices are copied so later changes to it do not leak into the model.
func NewNaiveBayes(a *Artifact) (*NaiveBayes, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	an, err := NewAnalyzer(a.Analyzer)
	if err != nil {
		return nil, err
	}
	features := make(map[string][]float64, len(a.FeatureLogProb))
	for f, p := range a.FeatureLogProb {
		features[f] = append([]float64(nil), p...)
	}
	return &NaiveBayes{
		name:     a.Name,
		classes:  append([]string(nil), a.Classes...),
		prior:    append([]float64(nil), a.ClassLogPrior...),
		features: features,
		analyzer: an,
	}, nil
}

func (nb *NaiveBayes) Name() string { return nb.name }

// Classes returns a copy of the label space.
func (nb *NaiveBayes) Classes() []string {
	return append([]string(nil), nb.classes...)
}

// jointLogLikelihood scores text against every class. Unknown features are
// skipped.
func (nb *NaiveBayes) jointLogLikelihood(text string) []float64 {
	jll := append([]float64(nil), nb.prior...)
	for _, f := range nb.analyzer.Analyze(text) {
		if p, ok := nb.features[f]; ok {
			floats.Add(jll, p)
		}
	}
	return jll
}

// Predict returns the most likely class for each sample. Ties go to the
// class listed first in the artifact.
func (nb *NaiveBayes) Predict(ctx context.Context, samples []string) ([]string, error) {
	labels, _, err := nb.PredictWithConfidence(ctx, samples)
	return labels, err
}

// PredictWithConfidence is Predict plus the posterior probability of each
// predicted class, computed from the same scores.
func (nb *NaiveBayes) PredictWithConfidence(ctx context.Context, samples []string) ([]string, []float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	labels := make([]string, len(samples))
	conf := make([]float64, len(samples))
	for i, s := range samples {
		jll := nb.jointLogLikelihood(s)
		best := floats.MaxIdx(jll)
		labels[i] = nb.classes[best]
		conf[i] = math.Exp(jll[best] - floats.LogSumExp(jll))
	}
	return labels, conf, nil
}
