// Package predictortest provides tiny but real artifacts for tests.
package predictortest

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"lensx/pkg/predictor"
)

const (
	strong = -1.0
	weak   = -6.0
)

var half = math.Log(0.5)

// binary builds a two-class word model. Words in neg pull towards "0" and
// words in pos towards "1".
func binary(name string, neg, pos []string) *predictor.Artifact {
	feats := make(map[string][]float64, len(neg)+len(pos))
	for _, w := range neg {
		feats[w] = []float64{strong, weak}
	}
	for _, w := range pos {
		feats[w] = []float64{weak, strong}
	}
	return &predictor.Artifact{
		Name:           name,
		Version:        "test",
		Analyzer:       predictor.AnalyzerSpec{Kind: predictor.AnalyzerWord, NgramMin: 1, NgramMax: 1, Lowercase: true},
		Classes:        []string{"0", "1"},
		ClassLogPrior:  []float64{half, half},
		FeatureLogProb: feats,
	}
}

// Spam labels "free entry win" as 0 (spam) and "hi mom see you tonight" as 1.
func Spam() *predictor.Artifact {
	return binary("spam",
		[]string{"free", "entry", "win", "prize", "claim"},
		[]string{"mom", "see", "you", "tonight", "hi"},
	)
}

// Sentiment labels "delicious" reviews 1 and "awful" reviews 0.
func Sentiment() *predictor.Artifact {
	return binary("review",
		[]string{"awful", "cold", "bland", "rude"},
		[]string{"delicious", "great", "tasty", "loved"},
	)
}

// Language tells English from French by character trigrams.
func Language() *predictor.Artifact {
	return &predictor.Artifact{
		Name:          "lang_det",
		Version:       "test",
		Analyzer:      predictor.AnalyzerSpec{Kind: predictor.AnalyzerChar, NgramMin: 3, NgramMax: 3, Lowercase: true},
		Classes:       []string{"English", "French"},
		ClassLogPrior: []float64{half, half},
		FeatureLogProb: map[string][]float64{
			"hel": {strong, weak},
			"ell": {strong, weak},
			"llo": {strong, weak},
			"the": {strong, weak},
			"bon": {weak, strong},
			"jou": {weak, strong},
			"our": {weak, strong},
			"les": {weak, strong},
		},
	}
}

// News has three topics and uses word bigrams as well as unigrams.
func News() *predictor.Artifact {
	third := math.Log(1.0 / 3)
	return &predictor.Artifact{
		Name:          "news_short",
		Version:       "test",
		Analyzer:      predictor.AnalyzerSpec{Kind: predictor.AnalyzerWord, NgramMin: 1, NgramMax: 2, Lowercase: true},
		Classes:       []string{"BUSINESS", "SPORTS", "POLITICS"},
		ClassLogPrior: []float64{third, third, third},
		FeatureLogProb: map[string][]float64{
			"stocks":       {strong, weak, weak},
			"market":       {strong, weak, weak},
			"stocks rally": {strong, weak, weak},
			"match":        {weak, strong, weak},
			"goal":         {weak, strong, weak},
			"world cup":    {weak, strong, weak},
			"election":     {weak, weak, strong},
			"senate":       {weak, weak, strong},
		},
	}
}

// ModelFiles maps the default artifact file names to their fixtures.
func ModelFiles() map[string]*predictor.Artifact {
	return map[string]*predictor.Artifact{
		"spam.json":       Spam(),
		"lang_det.json":   Language(),
		"review.json":     Sentiment(),
		"news_short.json": News(),
	}
}

// ImageFiles are the default image names expected in the assets dir.
var ImageFiles = []string{
	"spam.jpg",
	"not_spam.png",
	"liked.jpeg",
	"images.jpeg",
	"riteshsamridhipics.jpg",
}

// WriteModels writes every fixture artifact into dir.
func WriteModels(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, a := range ModelFiles() {
		if err := predictor.WriteArtifact(filepath.Join(dir, name), a); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// WriteImages writes placeholder image files into dir.
func WriteImages(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, name := range ImageFiles {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("img:"+name), 0o644); err != nil {
			return err
		}
	}
	return nil
}
