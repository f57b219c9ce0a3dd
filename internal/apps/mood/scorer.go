package mood

import (
	"errors"
	"strings"

	"github.com/jonreiter/govader"
)

// ErrEmptyText is returned when text analysis is requested on empty input.
var ErrEmptyText = errors.New("text is required for sentiment analysis")

// Scorer turns free text into a bounded compound score and an emotion label.
// Implementations must be deterministic for identical input.
type Scorer interface {
	Score(text string) (label string, score float64, err error)
}

// VaderScorer scores text with the VADER lexicon model. The lexicon is loaded
// once at construction, not per call.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *VaderScorer) Score(text string) (string, float64, error) {
	if strings.TrimSpace(text) == "" {
		return "", 0, ErrEmptyText
	}
	compound := s.analyzer.PolarityScores(text).Compound
	return LabelForScore(compound), compound, nil
}

// LabelForScore maps a compound score in [-1, 1] to a discrete label.
// Thresholds are fixed: >= 0.05 positive, <= -0.05 negative, else neutral.
func LabelForScore(score float64) string {
	switch {
	case score >= 0.05:
		return LabelPositive
	case score <= -0.05:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
