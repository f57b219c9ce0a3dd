package mood_test

import (
	"testing"

	"github.com/feelup-app/feelup-backend/internal/apps/mood"
	"github.com/stretchr/testify/assert"
)

func TestCheckinStreakConsecutiveDays(t *testing.T) {
	today := day(t, "2025-03-10")
	entries := []mood.MoodEntry{
		unscored(at(t, "2025-03-10", 9), "🙂"),
		unscored(at(t, "2025-03-09", 9), "🙂"),
		unscored(at(t, "2025-03-08", 9), "🙂"),
	}

	assert.Equal(t, 3, mood.CheckinStreak(entries, today))
}

func TestCheckinStreakZeroWithoutTodaysCheckin(t *testing.T) {
	today := day(t, "2025-03-10")
	entries := []mood.MoodEntry{
		unscored(at(t, "2025-03-09", 9), "🙂"),
		unscored(at(t, "2025-03-08", 9), "🙂"),
	}

	assert.Equal(t, 0, mood.CheckinStreak(entries, today))
}

func TestCheckinStreakStopsAtGap(t *testing.T) {
	today := day(t, "2025-03-10")
	entries := []mood.MoodEntry{
		unscored(at(t, "2025-03-10", 9), "🙂"),
		unscored(at(t, "2025-03-09", 9), "🙂"),
		// gap on 2025-03-08
		unscored(at(t, "2025-03-07", 9), "🙂"),
		unscored(at(t, "2025-03-06", 9), "🙂"),
	}

	assert.Equal(t, 2, mood.CheckinStreak(entries, today))
}

func TestCheckinStreakMultipleCheckinsSameDayCountOnce(t *testing.T) {
	today := day(t, "2025-03-10")
	entries := []mood.MoodEntry{
		unscored(at(t, "2025-03-10", 8), "🙂"),
		unscored(at(t, "2025-03-10", 13), "😐"),
		unscored(at(t, "2025-03-10", 22), "🙂"),
	}

	assert.Equal(t, 1, mood.CheckinStreak(entries, today))
}

func TestCheckinStreakIgnoresJournalEntries(t *testing.T) {
	today := day(t, "2025-03-10")
	score := 0.5
	entries := []mood.MoodEntry{
		{Mood: "positive", Score: &score, Source: mood.SourceJournal, CreatedAt: at(t, "2025-03-10", 9)},
	}

	assert.Equal(t, 0, mood.CheckinStreak(entries, today))
}

func TestCheckinStreakEmptyHistory(t *testing.T) {
	assert.Equal(t, 0, mood.CheckinStreak(nil, day(t, "2025-03-10")))
}
