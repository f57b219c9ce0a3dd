package mood

// Fixed coaching copy. Recommend is a deterministic decision table over the
// recent entries, so identical input always yields identical output.
var (
	starterSuggestions = []string{
		"Take a 5-minute breathing break",
		"Write one positive thing that happened today",
	}
	copeSuggestions = []string{
		"Take a 10-minute walk in nature",
		"Try a grounding exercise: 5 senses check",
		"Write down 3 things you are grateful for",
	}
	momentumSuggestions = []string{
		"Keep up the momentum — try a small creative task",
		"Share a positive moment in your journal",
		"Try a short gratitude list before bed",
	}
)

const dailyGoal = "Try to check in at least once a day this week."

// Recommend produces coaching output from up to the 14 most recent entries.
// Entries without a score count toward neither the positive nor the negative
// tally.
func Recommend(hasAccount bool, recent []MoodEntry) Recommendation {
	if !hasAccount {
		return Recommendation{Message: "Login to get personalized recommendations."}
	}

	if len(recent) == 0 {
		return Recommendation{
			Message:     "No recent entries found. Try a quick check-in to get started.",
			Suggestions: starterSuggestions,
		}
	}

	var pos, neg int
	for i := range recent {
		if recent[i].Score == nil {
			continue
		}
		switch {
		case *recent[i].Score > 0.05:
			pos++
		case *recent[i].Score < -0.05:
			neg++
		}
	}

	if neg > pos {
		return Recommendation{
			Message:     "It seems you had more challenging moments recently. That is okay — small steps help.",
			Suggestions: copeSuggestions,
			DailyGoal:   dailyGoal,
		}
	}

	return Recommendation{
		Message:     "Nice work — you have several positive check-ins. Keep nurturing these moments.",
		Suggestions: momentumSuggestions,
		DailyGoal:   dailyGoal,
	}
}
