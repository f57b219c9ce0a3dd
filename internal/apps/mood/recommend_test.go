package mood_test

import (
	"testing"
	"time"

	"github.com/feelup-app/feelup-backend/internal/apps/mood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryWithScore(score float64) mood.MoodEntry {
	return mood.MoodEntry{Score: &score, Source: mood.SourceCheckin, CreatedAt: time.Now().UTC()}
}

func TestRecommendWithoutAccount(t *testing.T) {
	rec := mood.Recommend(false, nil)

	assert.Equal(t, "Login to get personalized recommendations.", rec.Message)
	assert.Empty(t, rec.Suggestions)
	assert.Empty(t, rec.DailyGoal)
}

func TestRecommendOnboarding(t *testing.T) {
	rec := mood.Recommend(true, nil)

	assert.Equal(t, "No recent entries found. Try a quick check-in to get started.", rec.Message)
	require.Len(t, rec.Suggestions, 2)
	assert.Empty(t, rec.DailyGoal)
}

func TestRecommendChallengingBranch(t *testing.T) {
	recent := []mood.MoodEntry{
		entryWithScore(-0.9),
		entryWithScore(-0.9),
		entryWithScore(-0.9),
		entryWithScore(-0.9),
		entryWithScore(-0.9),
	}

	rec := mood.Recommend(true, recent)

	assert.Contains(t, rec.Message, "challenging moments")
	require.Len(t, rec.Suggestions, 3)
	assert.Equal(t, "Try to check in at least once a day this week.", rec.DailyGoal)
}

func TestRecommendMomentumBranchOnTie(t *testing.T) {
	recent := []mood.MoodEntry{
		entryWithScore(0.6),
		entryWithScore(-0.6),
	}

	rec := mood.Recommend(true, recent)

	assert.Contains(t, rec.Message, "Nice work")
	require.Len(t, rec.Suggestions, 3)
	assert.Equal(t, "Try to check in at least once a day this week.", rec.DailyGoal)
}

func TestRecommendNilScoresCountNeither(t *testing.T) {
	recent := []mood.MoodEntry{
		{Source: mood.SourceCheckin},
		{Source: mood.SourceCheckin},
		entryWithScore(-0.5),
	}

	rec := mood.Recommend(true, recent)

	// one negative vs zero positive
	assert.Contains(t, rec.Message, "challenging moments")
}

func TestRecommendNeutralBandCountsNeither(t *testing.T) {
	recent := []mood.MoodEntry{
		entryWithScore(0.05),
		entryWithScore(-0.05),
		entryWithScore(0.0),
	}

	rec := mood.Recommend(true, recent)

	// pos == neg == 0, momentum branch wins
	assert.Contains(t, rec.Message, "Nice work")
}

func TestRecommendDeterministic(t *testing.T) {
	recent := []mood.MoodEntry{
		entryWithScore(-0.9),
		entryWithScore(0.3),
	}

	first := mood.Recommend(true, recent)
	second := mood.Recommend(true, recent)

	assert.Equal(t, first, second)
}
