package predictor

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// Analyzer kinds understood by NewAnalyzer.
const (
	AnalyzerWord = "word"
	AnalyzerChar = "char"
	AnalyzerBPE  = "bpe"
)

// AnalyzerSpec configures how raw text is turned into features.
type AnalyzerSpec struct {
	Kind      string `json:"kind" jsonschema:"enum=word,enum=char,enum=bpe"`
	NgramMin  int    `json:"ngram_min,omitempty" jsonschema:"minimum=1,default=1"`
	NgramMax  int    `json:"ngram_max,omitempty" jsonschema:"minimum=1,default=1"`
	Lowercase bool   `json:"lowercase,omitempty"`
}

// Artifact is the on-disk form of a multinomial naive-Bayes text model.
// FeatureLogProb maps a feature to its log-likelihood under each class, in
// the order of Classes.
type Artifact struct {
	Name           string               `json:"name" jsonschema:"required"`
	Version        string               `json:"version,omitempty"`
	Analyzer       AnalyzerSpec         `json:"analyzer" jsonschema:"required"`
	Classes        []string             `json:"classes" jsonschema:"required,minItems=1"`
	ClassLogPrior  []float64            `json:"class_log_prior" jsonschema:"required"`
	FeatureLogProb map[string][]float64 `json:"feature_log_prob"`
}

// Validate checks the shape of the artifact.
func (a *Artifact) Validate() error {
	if len(a.Classes) == 0 {
		return errors.New("artifact has no classes")
	}
	seen := make(map[string]struct{}, len(a.Classes))
	for _, c := range a.Classes {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("duplicate class %q", c)
		}
		seen[c] = struct{}{}
	}
	if len(a.ClassLogPrior) != len(a.Classes) {
		return fmt.Errorf("class_log_prior has %d entries, want %d", len(a.ClassLogPrior), len(a.Classes))
	}
	for _, p := range a.ClassLogPrior {
		if math.IsNaN(p) || p > 0 {
			return fmt.Errorf("class_log_prior entry %v is not a log-probability", p)
		}
	}
	for feat, probs := range a.FeatureLogProb {
		if len(probs) != len(a.Classes) {
			return fmt.Errorf("feature %q has %d log-probs, want %d", feat, len(probs), len(a.Classes))
		}
	}
	return nil
}

// ReadArtifact decodes and validates an artifact file.
func ReadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode artifact %s: %w", path, err)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid artifact %s: %w", path, err)
	}
	return &a, nil
}

// WriteArtifact encodes a to path.
func WriteArtifact(path string, a *Artifact) error {
	if err := a.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads an artifact and builds the predictor it describes.
func Load(path string) (*NaiveBayes, error) {
	a, err := ReadArtifact(path)
	if err != nil {
		return nil, err
	}
	return NewNaiveBayes(a)
}
