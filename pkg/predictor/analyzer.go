package predictor

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"github.com/tiktoken-go/tokenizer/codec"
)

// Analyzer turns one sample into the features the model was built on.
// Repeated features are returned once per occurrence.
type Analyzer interface {
	Analyze(text string) []string
}

// NewAnalyzer builds the analyzer described by spec.
func NewAnalyzer(spec AnalyzerSpec) (Analyzer, error) {
	lo, hi := spec.NgramMin, spec.NgramMax
	if lo == 0 {
		lo = 1
	}
	if hi == 0 {
		hi = lo
	}
	if lo < 1 || hi < lo {
		return nil, fmt.Errorf("invalid ngram range [%d, %d]", spec.NgramMin, spec.NgramMax)
	}
	r := ngramRange{min: lo, max: hi}

	switch spec.Kind {
	case AnalyzerWord, "":
		return &wordAnalyzer{ngramRange: r, lowercase: spec.Lowercase}, nil
	case AnalyzerChar:
		return &charAnalyzer{ngramRange: r, lowercase: spec.Lowercase}, nil
	case AnalyzerBPE:
		return &bpeAnalyzer{ngramRange: r}, nil
	default:
		return nil, fmt.Errorf("unknown analyzer kind %q", spec.Kind)
	}
}

type ngramRange struct {
	min, max int
}

func (r ngramRange) expand(tokens []string, sep string) []string {
	if r.min == 1 && r.max == 1 {
		return tokens
	}
	var out []string
	for n := r.min; n <= r.max; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], sep))
		}
	}
	return out
}

// --- word n-grams ---

// Two or more letters or digits, the usual bag-of-words token pattern.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

var (
	sentenceOnce      sync.Once
	sentenceTokenizer *sentences.DefaultSentenceTokenizer
)

// splitSentences splits text with the english punkt model. If the model
// cannot be loaded the whole text is treated as one sentence.
func splitSentences(text string) []string {
	sentenceOnce.Do(func() {
		t, err := english.NewSentenceTokenizer(nil)
		if err == nil {
			sentenceTokenizer = t
		}
	})
	if sentenceTokenizer == nil {
		return []string{text}
	}
	var out []string
	for _, s := range sentenceTokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

type wordAnalyzer struct {
	ngramRange
	lowercase bool
}

// Analyze builds n-grams per sentence so that no n-gram spans a sentence
// boundary.
func (a *wordAnalyzer) Analyze(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var feats []string
	for _, sent := range splitSentences(text) {
		if a.lowercase {
			sent = strings.ToLower(sent)
		}
		feats = append(feats, a.expand(wordPattern.FindAllString(sent, -1), " ")...)
	}
	return feats
}

// --- character n-grams ---

type charAnalyzer struct {
	ngramRange
	lowercase bool
}

func (a *charAnalyzer) Analyze(text string) []string {
	if a.lowercase {
		text = strings.ToLower(text)
	}
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	chars := make([]string, len(runes))
	for i, r := range runes {
		chars[i] = string(r)
	}
	return a.expand(chars, "")
}

// --- byte-pair tokens ---

var cl100k = codec.NewCl100kBase()

type bpeAnalyzer struct {
	ngramRange
}

func (a *bpeAnalyzer) Analyze(text string) []string {
	if text == "" {
		return nil
	}
	_, tokens, err := cl100k.Encode(text)
	if err != nil {
		tokens = strings.Fields(text)
	}
	return a.expand(tokens, "")
}
