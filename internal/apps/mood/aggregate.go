package mood

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// dateOnly truncates an instant to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DailyBuckets groups entries by UTC calendar date over the window
// [today-(windowDays-1), today] and always emits exactly windowDays buckets,
// filling days with no data with count 0 and a nil average. Count reflects all
// entries for the day; the average covers only scored entries and is rounded
// to 3 decimals for presentation. Entries outside the window are ignored.
func DailyBuckets(entries []MoodEntry, today time.Time, windowDays int) []DailyBucket {
	type acc struct {
		count  int
		scored int
		sum    float64
	}

	byDate := make(map[string]*acc)
	for i := range entries {
		key := entries[i].CreatedAt.UTC().Format(dateLayout)
		a := byDate[key]
		if a == nil {
			a = &acc{}
			byDate[key] = a
		}
		a.count++
		if entries[i].Score != nil {
			a.scored++
			a.sum += *entries[i].Score
		}
	}

	start := dateOnly(today).AddDate(0, 0, -(windowDays - 1))
	buckets := make([]DailyBucket, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		day := start.AddDate(0, 0, i)
		bucket := DailyBucket{Date: day.Format(dateLayout)}
		if a, ok := byDate[bucket.Date]; ok {
			bucket.Count = a.count
			if a.scored > 0 {
				avg := round3(a.sum / float64(a.scored))
				bucket.AverageScore = &avg
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// Distribution counts entries per mood label. An empty label maps to
// "unknown"; every other label is preserved verbatim.
func Distribution(entries []MoodEntry) map[string]int {
	dist := make(map[string]int)
	for i := range entries {
		label := entries[i].Mood
		if label == "" {
			label = "unknown"
		}
		dist[label]++
	}
	return dist
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
