package mood_test

import (
	"testing"

	"github.com/feelup-app/feelup-backend/internal/apps/mood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelForScoreThresholds(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"at positive threshold", 0.05, mood.LabelPositive},
		{"above positive threshold", 0.9, mood.LabelPositive},
		{"at negative threshold", -0.05, mood.LabelNegative},
		{"below negative threshold", -0.9, mood.LabelNegative},
		{"zero", 0.0, mood.LabelNeutral},
		{"just inside neutral band", 0.049, mood.LabelNeutral},
		{"just inside neutral band negative", -0.049, mood.LabelNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mood.LabelForScore(tt.score))
		})
	}
}

func TestVaderScorerRejectsEmptyText(t *testing.T) {
	scorer := mood.NewVaderScorer()

	_, _, err := scorer.Score("")
	assert.ErrorIs(t, err, mood.ErrEmptyText)

	_, _, err = scorer.Score("   \t ")
	assert.ErrorIs(t, err, mood.ErrEmptyText)
}

func TestVaderScorerPolarity(t *testing.T) {
	scorer := mood.NewVaderScorer()

	label, score, err := scorer.Score("I love this wonderful amazing day")
	require.NoError(t, err)
	assert.Equal(t, mood.LabelPositive, label)
	assert.Greater(t, score, 0.05)
	assert.LessOrEqual(t, score, 1.0)

	label, score, err = scorer.Score("I hate this terrible horrible day")
	require.NoError(t, err)
	assert.Equal(t, mood.LabelNegative, label)
	assert.Less(t, score, -0.05)
	assert.GreaterOrEqual(t, score, -1.0)
}

func TestVaderScorerDeterministic(t *testing.T) {
	scorer := mood.NewVaderScorer()
	text := "work was stressful but dinner with friends was great"

	label1, score1, err := scorer.Score(text)
	require.NoError(t, err)
	label2, score2, err := scorer.Score(text)
	require.NoError(t, err)

	assert.Equal(t, label1, label2)
	assert.Equal(t, score1, score2)
}
