package mood

import "time"

// CheckinStreak counts consecutive calendar days with at least one check-in,
// ending exactly at today. A user who checked in yesterday but not today has
// streak 0: the day's check-in is still pending.
func CheckinStreak(entries []MoodEntry, today time.Time) int {
	days := make(map[string]bool)
	for i := range entries {
		if entries[i].Source == SourceCheckin {
			days[entries[i].CreatedAt.UTC().Format(dateLayout)] = true
		}
	}

	streak := 0
	cursor := dateOnly(today)
	for days[cursor.Format(dateLayout)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
