package sentiment

import (
	"context"
	"strings"
	"unicode"

	"stock-sentiment-api/internal/types"
)

// Label cuts on the compound scale.
const compoundLabelThreshold = 0.05

// Lexicon scores text with weighted financial word lists. It performs no
// I/O and never fails, which makes it the default strategy.
type Lexicon struct {
	maxInputLen      int
	bullishWords     map[string]float64
	bearishWords     map[string]float64
	intensifiers     map[string]float64
	negators         map[string]bool
	uncertaintyWords map[string]bool
}

// NewLexicon creates a lexicon scorer with the built-in dictionaries.
func NewLexicon(maxInputLen int) *Lexicon {
	return &Lexicon{
		maxInputLen:      maxInputLen,
		bullishWords:     loadBullishWords(),
		bearishWords:     loadBearishWords(),
		intensifiers:     loadIntensifiers(),
		negators:         loadNegators(),
		uncertaintyWords: loadUncertaintyWords(),
	}
}

func (l *Lexicon) MaxInputLen() int { return l.maxInputLen }

func (l *Lexicon) Scale() Scale { return ScaleCompound }

// Score computes a compound polarity in [-1, 1] from the weighted word
// hits, dampened by hedging language.
func (l *Lexicon) Score(ctx context.Context, text string) (Result, error) {
	words := tokenize(text)

	var bullish, bearish float64
	sentimentHits := 0
	uncertaintyHits := 0

	for i, word := range words {
		if l.uncertaintyWords[word] {
			uncertaintyHits++
		}

		weight, polarity := l.lookup(word)
		if weight == 0 {
			continue
		}
		sentimentHits++

		weight *= l.intensity(words, i)
		if l.negated(words, i) {
			polarity = -polarity
		}

		if polarity > 0 {
			bullish += weight
		} else {
			bearish += weight
		}
	}

	var compound float64
	if total := bullish + bearish; total > 0 {
		compound = (bullish - bearish) / total
	}

	// Hedging language reduces the strength of the signal.
	if len(words) > 0 && uncertaintyHits > 0 {
		uncertainty := clamp(float64(uncertaintyHits)/float64(len(words))*20, 0, 1)
		compound *= 1 - uncertainty*0.5
	}
	compound = clamp(compound, -1, 1)

	confidence := 0.0
	if len(words) > 0 {
		confidence = clamp(float64(sentimentHits)/float64(len(words)+1)*2, 0, 1)
	}

	return Result{
		Label:      compoundLabel(compound),
		Polarity:   compound,
		Confidence: confidence,
	}, nil
}

func compoundLabel(score float64) types.Label {
	switch {
	case score >= compoundLabelThreshold:
		return types.LabelPositive
	case score <= -compoundLabelThreshold:
		return types.LabelNegative
	default:
		return types.LabelNeutral
	}
}

func (l *Lexicon) lookup(word string) (weight, polarity float64) {
	if w, ok := l.bullishWords[word]; ok {
		return w, 1
	}
	if w, ok := l.bearishWords[word]; ok {
		return w, -1
	}
	return 0, 0
}

// negated checks the previous 3 words for a negation.
func (l *Lexicon) negated(words []string, i int) bool {
	start := i - 3
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if l.negators[words[j]] {
			return true
		}
	}
	return false
}

// intensity checks the previous 2 words for an intensifier.
func (l *Lexicon) intensity(words []string, i int) float64 {
	start := i - 2
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if mult, ok := l.intensifiers[words[j]]; ok {
			return mult
		}
	}
	return 1.0
}

// tokenize splits text into lowercased alphanumeric words.
func tokenize(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(unicode.ToLower(r))
		} else if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}
	return words
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
