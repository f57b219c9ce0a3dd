package mood_test

import (
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/feelup-app/feelup-backend/internal/apps/mood"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger is an in-memory Ledger with the same ordering guarantees as the
// PostgreSQL implementation.
type fakeLedger struct {
	entries []mood.MoodEntry
	nextID  int64
	err     error
}

func (f *fakeLedger) Append(entry *mood.MoodEntry) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeLedger) add(userID uuid.UUID, e mood.MoodEntry) {
	e.UserID = userID
	f.nextID++
	e.ID = f.nextID
	f.entries = append(f.entries, e)
}

func (f *fakeLedger) Range(userID uuid.UUID, from, to time.Time, source string, order mood.SortOrder) ([]mood.MoodEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []mood.MoodEntry
	for _, e := range f.entries {
		if e.UserID != userID || e.CreatedAt.After(to) {
			continue
		}
		if !from.IsZero() && e.CreatedAt.Before(from) {
			continue
		}
		if source != "" && e.Source != source {
			continue
		}
		out = append(out, e)
	}
	sortEntries(out, order)
	return out, nil
}

func (f *fakeLedger) Latest(userID uuid.UUID, limit int) ([]mood.MoodEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []mood.MoodEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sortEntries(out, mood.OrderDesc)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeLedger) Page(userID uuid.UUID, source string, limit, offset int) ([]mood.MoodEntry, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []mood.MoodEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.Source == source {
			out = append(out, e)
		}
	}
	sortEntries(out, mood.OrderDesc)
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func sortEntries(entries []mood.MoodEntry, order mood.SortOrder) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if order == mood.OrderDesc {
			a, b = b, a
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// fakeScorer applies the real label thresholds to a canned score per text.
type fakeScorer struct {
	scores map[string]float64
}

func (s *fakeScorer) Score(text string) (string, float64, error) {
	if strings.TrimSpace(text) == "" {
		return "", 0, mood.ErrEmptyText
	}
	score := s.scores[text]
	return mood.LabelForScore(score), score, nil
}

type fakeNotes struct {
	note *mood.LastNote
	err  error
}

func (n *fakeNotes) LatestNote(uuid.UUID) (*mood.LastNote, error) {
	return n.note, n.err
}

func newService(ledger *fakeLedger, scorer *fakeScorer, notes *fakeNotes) *mood.MoodService {
	if scorer == nil {
		scorer = &fakeScorer{}
	}
	if notes == nil {
		notes = &fakeNotes{}
	}
	return mood.NewMoodService(ledger, scorer, notes)
}

func TestSubmitCheckinWithoutNoteStoresNilScore(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newService(ledger, nil, nil)
	userID := uuid.New()

	entry, err := svc.SubmitCheckin(userID, "🙂", "")
	require.NoError(t, err)

	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, "🙂", entry.Mood)
	assert.Nil(t, entry.Score)
	assert.Equal(t, mood.SourceCheckin, entry.Source)
}

func TestSubmitCheckinWithNoteIsScored(t *testing.T) {
	ledger := &fakeLedger{}
	scorer := &fakeScorer{scores: map[string]float64{"had a great walk": 0.71}}
	svc := newService(ledger, scorer, nil)

	entry, err := svc.SubmitCheckin(uuid.New(), "🙂", "had a great walk")
	require.NoError(t, err)

	require.NotNil(t, entry.Score)
	assert.Equal(t, 0.71, *entry.Score)
}

func TestSubmitJournalRejectsEmptyTextBeforeWrite(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newService(ledger, nil, nil)

	_, err := svc.SubmitJournal(uuid.New(), "  ", "")
	assert.ErrorIs(t, err, mood.ErrEmptyText)
	assert.Empty(t, ledger.entries)
}

func TestSubmitJournalOverrideReplacesLabelNotScore(t *testing.T) {
	ledger := &fakeLedger{}
	scorer := &fakeScorer{scores: map[string]float64{"rough morning": -0.62}}
	svc := newService(ledger, scorer, nil)

	entry, err := svc.SubmitJournal(uuid.New(), "rough morning", "hopeful")
	require.NoError(t, err)

	assert.Equal(t, "hopeful", entry.Mood)
	require.NotNil(t, entry.Score)
	assert.Equal(t, -0.62, *entry.Score)
	assert.Equal(t, mood.SourceJournal, entry.Source)
}

func TestSubmitJournalDetectedLabelWhenNoOverride(t *testing.T) {
	ledger := &fakeLedger{}
	scorer := &fakeScorer{scores: map[string]float64{"rough morning": -0.62}}
	svc := newService(ledger, scorer, nil)

	entry, err := svc.SubmitJournal(uuid.New(), "rough morning", "")
	require.NoError(t, err)
	assert.Equal(t, mood.LabelNegative, entry.Mood)
}

func TestRoundTripPreservesScorePrecision(t *testing.T) {
	ledger := &fakeLedger{}
	scorer := &fakeScorer{scores: map[string]float64{"note": 0.123456789}}
	svc := newService(ledger, scorer, nil)
	userID := uuid.New()

	entry, err := svc.SubmitCheckin(userID, "🙂", "note")
	require.NoError(t, err)

	got, err := ledger.Range(userID, entry.CreatedAt, entry.CreatedAt, "", mood.OrderAsc)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *entry, got[0])
	assert.Equal(t, 0.123456789, *got[0].Score)
}

func TestDashboardSeriesEmptyHistory(t *testing.T) {
	svc := newService(&fakeLedger{}, nil, nil)
	today := day(t, "2025-03-10")

	series, err := svc.DashboardSeries(uuid.New(), today)
	require.NoError(t, err)

	require.Len(t, series.Weekly, 7)
	require.Len(t, series.Monthly, 30)
	assert.Empty(t, series.Distribution)
	for _, b := range series.Weekly {
		assert.Equal(t, 0, b.Count)
		assert.Nil(t, b.AverageScore)
	}
}

func TestDashboardSeriesIdempotent(t *testing.T) {
	ledger := &fakeLedger{}
	userID := uuid.New()
	ledger.add(userID, scored(at(t, "2025-03-08", 10), "happy", 0.4))
	svc := newService(ledger, nil, nil)
	today := day(t, "2025-03-10")

	first, err := svc.DashboardSeries(userID, today)
	require.NoError(t, err)
	second, err := svc.DashboardSeries(userID, today)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDashboardSeriesEndToEnd(t *testing.T) {
	// Check-ins on three consecutive days ending today, scores 0.8, -0.2, 0.9.
	ledger := &fakeLedger{}
	userID := uuid.New()
	ledger.add(userID, scored(at(t, "2025-03-08", 9), "happy", 0.8))
	ledger.add(userID, scored(at(t, "2025-03-09", 9), "tired", -0.2))
	ledger.add(userID, scored(at(t, "2025-03-10", 9), "excited", 0.9))
	svc := newService(ledger, nil, nil)
	today := day(t, "2025-03-10")

	series, err := svc.DashboardSeries(userID, today)
	require.NoError(t, err)

	last := series.Weekly[6]
	assert.Equal(t, "2025-03-10", last.Date)
	assert.Equal(t, 1, last.Count)
	require.NotNil(t, last.AverageScore)
	assert.Equal(t, 0.9, *last.AverageScore)

	assert.Equal(t, map[string]int{"happy": 1, "tired": 1, "excited": 1}, series.Distribution)

	view, err := svc.CoachView(userID, today)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Streak)
}

func TestCoachViewChallengingBranch(t *testing.T) {
	ledger := &fakeLedger{}
	userID := uuid.New()
	for i := 0; i < 5; i++ {
		ledger.add(userID, scored(at(t, "2025-03-10", 8+i), "sad", -0.9))
	}
	notes := &fakeNotes{note: &mood.LastNote{Title: "venting", Body: "long day"}}
	svc := newService(ledger, nil, notes)

	view, err := svc.CoachView(userID, day(t, "2025-03-10"))
	require.NoError(t, err)

	assert.Contains(t, view.Recommendation.Message, "challenging moments")
	assert.Len(t, view.Recommendation.Suggestions, 3)
	assert.Equal(t, 1, view.Streak)
	require.NotNil(t, view.LastNote)
	assert.Equal(t, "venting", view.LastNote.Title)
}

func TestCoachViewEmptyHistory(t *testing.T) {
	svc := newService(&fakeLedger{}, nil, nil)

	view, err := svc.CoachView(uuid.New(), day(t, "2025-03-10"))
	require.NoError(t, err)

	assert.Equal(t, 0, view.Streak)
	assert.Nil(t, view.LastNote)
	assert.Len(t, view.Recommendation.Suggestions, 2)
	assert.Empty(t, view.Recommendation.DailyGoal)
}

func TestCoachViewUsesAtMostFourteenEntries(t *testing.T) {
	ledger := &fakeLedger{}
	userID := uuid.New()
	// 14 recent negatives after 20 old positives: only the negatives count.
	for i := 0; i < 20; i++ {
		ledger.add(userID, scored(at(t, "2025-02-01", 9).Add(time.Duration(i)*time.Minute), "happy", 0.9))
	}
	for i := 0; i < 14; i++ {
		ledger.add(userID, scored(at(t, "2025-03-09", 9).Add(time.Duration(i)*time.Minute), "sad", -0.9))
	}
	svc := newService(ledger, nil, nil)

	view, err := svc.CoachView(userID, day(t, "2025-03-10"))
	require.NoError(t, err)
	assert.Contains(t, view.Recommendation.Message, "challenging moments")
}

func TestStorageErrorsSurface(t *testing.T) {
	boom := errors.New("connection refused")
	svc := newService(&fakeLedger{err: boom}, nil, nil)

	_, err := svc.SubmitCheckin(uuid.New(), "🙂", "")
	assert.ErrorIs(t, err, boom)

	_, err = svc.DashboardSeries(uuid.New(), day(t, "2025-03-10"))
	assert.ErrorIs(t, err, boom)

	_, err = svc.CoachView(uuid.New(), day(t, "2025-03-10"))
	assert.ErrorIs(t, err, boom)
}

func TestJournalAnalyticsSkipsUnscored(t *testing.T) {
	ledger := &fakeLedger{}
	userID := uuid.New()
	score := 0.42
	ledger.add(userID, mood.MoodEntry{Mood: "positive", Score: &score, Source: mood.SourceJournal, CreatedAt: at(t, "2025-03-09", 9)})
	ledger.add(userID, mood.MoodEntry{Mood: "🙂", Source: mood.SourceCheckin, CreatedAt: at(t, "2025-03-09", 10)})
	svc := newService(ledger, nil, nil)

	points, err := svc.JournalAnalytics(userID, day(t, "2025-03-10"))
	require.NoError(t, err)

	require.Len(t, points, 1)
	assert.Equal(t, "2025-03-09", points[0].Date)
	assert.Equal(t, 0.42, points[0].Score)
}
