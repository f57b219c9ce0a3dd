package mood_test

import (
	"testing"
	"time"

	"github.com/feelup-app/feelup-backend/internal/apps/mood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d.UTC()
}

func at(t *testing.T, s string, hour int) time.Time {
	t.Helper()
	return day(t, s).Add(time.Duration(hour) * time.Hour)
}

func scored(ts time.Time, label string, score float64) mood.MoodEntry {
	return mood.MoodEntry{Mood: label, Score: &score, CreatedAt: ts, Source: mood.SourceCheckin}
}

func unscored(ts time.Time, label string) mood.MoodEntry {
	return mood.MoodEntry{Mood: label, CreatedAt: ts, Source: mood.SourceCheckin}
}

func TestDailyBucketsGapFilling(t *testing.T) {
	buckets := mood.DailyBuckets(nil, day(t, "2025-03-10"), 7)

	require.Len(t, buckets, 7)
	assert.Equal(t, "2025-03-04", buckets[0].Date)
	assert.Equal(t, "2025-03-10", buckets[6].Date)
	for _, b := range buckets {
		assert.Equal(t, 0, b.Count)
		assert.Nil(t, b.AverageScore)
	}
}

func TestDailyBucketsAveragesScoredEntriesOnly(t *testing.T) {
	entries := []mood.MoodEntry{
		scored(at(t, "2025-03-10", 9), "positive", 0.8),
		scored(at(t, "2025-03-10", 14), "negative", -0.2),
		unscored(at(t, "2025-03-10", 18), "🙂"),
	}

	buckets := mood.DailyBuckets(entries, day(t, "2025-03-10"), 7)

	last := buckets[6]
	assert.Equal(t, 3, last.Count)
	require.NotNil(t, last.AverageScore)
	assert.Equal(t, 0.3, *last.AverageScore)
}

func TestDailyBucketsUnscoredDayHasNilAverage(t *testing.T) {
	entries := []mood.MoodEntry{
		unscored(at(t, "2025-03-09", 8), "😴"),
		unscored(at(t, "2025-03-09", 20), "😴"),
	}

	buckets := mood.DailyBuckets(entries, day(t, "2025-03-10"), 7)

	assert.Equal(t, 2, buckets[5].Count)
	assert.Nil(t, buckets[5].AverageScore)
}

func TestDailyBucketsRoundsToThreeDecimals(t *testing.T) {
	entries := []mood.MoodEntry{
		scored(at(t, "2025-03-10", 9), "positive", 0.1),
		scored(at(t, "2025-03-10", 10), "positive", 0.2),
		scored(at(t, "2025-03-10", 11), "positive", 0.2),
	}

	buckets := mood.DailyBuckets(entries, day(t, "2025-03-10"), 7)

	require.NotNil(t, buckets[6].AverageScore)
	// (0.1+0.2+0.2)/3 = 0.16666... rounds to 0.167
	assert.Equal(t, 0.167, *buckets[6].AverageScore)
}

func TestDailyBucketsIgnoresEntriesOutsideWindow(t *testing.T) {
	entries := []mood.MoodEntry{
		scored(at(t, "2025-03-01", 9), "positive", 0.9),
		scored(at(t, "2025-03-10", 9), "positive", 0.5),
	}

	buckets := mood.DailyBuckets(entries, day(t, "2025-03-10"), 7)

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, 1, total)
}

func TestDailyBucketsIdempotent(t *testing.T) {
	entries := []mood.MoodEntry{
		scored(at(t, "2025-03-08", 9), "positive", 0.7),
		unscored(at(t, "2025-03-09", 12), "🙂"),
	}

	first := mood.DailyBuckets(entries, day(t, "2025-03-10"), 7)
	second := mood.DailyBuckets(entries, day(t, "2025-03-10"), 7)

	assert.Equal(t, first, second)
}

func TestDistribution(t *testing.T) {
	entries := []mood.MoodEntry{
		scored(at(t, "2025-03-10", 9), "happy", 0.8),
		scored(at(t, "2025-03-10", 10), "happy", 0.6),
		scored(at(t, "2025-03-10", 11), "sad", -0.4),
		unscored(at(t, "2025-03-10", 12), ""),
	}

	dist := mood.Distribution(entries)

	assert.Equal(t, map[string]int{
		"happy":   2,
		"sad":     1,
		"unknown": 1,
	}, dist)
}

func TestDistributionPreservesLabelsVerbatim(t *testing.T) {
	entries := []mood.MoodEntry{
		unscored(at(t, "2025-03-10", 9), "😤"),
		unscored(at(t, "2025-03-10", 10), "Happy "),
	}

	dist := mood.Distribution(entries)

	assert.Equal(t, 1, dist["😤"])
	assert.Equal(t, 1, dist["Happy "])
}
