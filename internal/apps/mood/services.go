package mood

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrCheckinNotFound is returned when no check-in exists for today.
var ErrCheckinNotFound = errors.New("no check-in today")

// NotesProvider supplies the most recent free-form note for the coach view.
// A nil note with a nil error means the user has no notes yet.
type NotesProvider interface {
	LatestNote(userID uuid.UUID) (*LastNote, error)
}

// MoodService orchestrates the mood ledger, the sentiment scorer, and the
// derived analytics. All collaborators are injected; the service holds no
// global state.
type MoodService struct {
	ledger Ledger
	scorer Scorer
	notes  NotesProvider
	now    func() time.Time
}

func NewMoodService(ledger Ledger, scorer Scorer, notes NotesProvider) *MoodService {
	return &MoodService{
		ledger: ledger,
		scorer: scorer,
		notes:  notes,
		now:    time.Now,
	}
}

// SubmitCheckin records a quick mood check-in. The note is scored only when
// present; a check-in without text stores a nil score.
func (s *MoodService) SubmitCheckin(userID uuid.UUID, moodLabel, note string) (*MoodEntry, error) {
	var score *float64
	if strings.TrimSpace(note) != "" {
		_, v, err := s.scorer.Score(note)
		if err != nil {
			return nil, err
		}
		score = &v
	}

	entry := &MoodEntry{
		UserID:    userID,
		Mood:      moodLabel,
		Score:     score,
		Note:      note,
		Source:    SourceCheckin,
		CreatedAt: s.now().UTC(),
	}
	if err := s.ledger.Append(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// SubmitJournal records a scored journal entry. The scorer always runs; an
// emotion override replaces the detected label but never the detected score.
// Empty text is rejected before anything is written.
func (s *MoodService) SubmitJournal(userID uuid.UUID, text, emotionOverride string) (*MoodEntry, error) {
	label, score, err := s.scorer.Score(text)
	if err != nil {
		return nil, err
	}
	if emotionOverride != "" {
		label = emotionOverride
	}

	entry := &MoodEntry{
		UserID:    userID,
		Mood:      label,
		Score:     &score,
		Note:      text,
		Source:    SourceJournal,
		CreatedAt: s.now().UTC(),
	}
	if err := s.ledger.Append(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// TodayCheckin returns the most recent check-in made today, if any.
func (s *MoodService) TodayCheckin(userID uuid.UUID) (*MoodEntry, error) {
	day := dateOnly(s.now())
	entries, err := s.ledger.Range(userID, day, endOfDay(day), SourceCheckin, OrderDesc)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrCheckinNotFound
	}
	return &entries[0], nil
}

// ListJournal returns one page of journal entries, newest first.
func (s *MoodService) ListJournal(userID uuid.UUID, page, pageSize int) ([]MoodEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.ledger.Page(userID, SourceJournal, pageSize, (page-1)*pageSize)
}

// DashboardSeries derives the weekly and monthly bucket series and the 30-day
// mood distribution from a single 30-day ledger read. Everything is
// recomputed from the ledger on every call.
func (s *MoodService) DashboardSeries(userID uuid.UUID, today time.Time) (*DashboardResponse, error) {
	day := dateOnly(today)
	monthStart := day.AddDate(0, 0, -29)

	entries, err := s.ledger.Range(userID, monthStart, endOfDay(day), "", OrderAsc)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Weekly:       DailyBuckets(entries, day, 7),
		Monthly:      DailyBuckets(entries, day, 30),
		Distribution: Distribution(entries),
	}, nil
}

// CoachView combines the rule-based recommendation over the latest 14
// entries, the check-in streak, and the user's last free-form note.
func (s *MoodService) CoachView(userID uuid.UUID, today time.Time) (*CoachResponse, error) {
	recent, err := s.ledger.Latest(userID, 14)
	if err != nil {
		return nil, err
	}

	checkins, err := s.ledger.Range(userID, time.Time{}, endOfDay(dateOnly(today)), SourceCheckin, OrderDesc)
	if err != nil {
		return nil, err
	}

	var lastNote *LastNote
	if s.notes != nil {
		lastNote, err = s.notes.LatestNote(userID)
		if err != nil {
			return nil, err
		}
	}

	return &CoachResponse{
		Recommendation: Recommend(true, recent),
		Streak:         CheckinStreak(checkins, today),
		LastNote:       lastNote,
	}, nil
}

// JournalAnalytics returns the scored journal series for the last 30 days.
func (s *MoodService) JournalAnalytics(userID uuid.UUID, today time.Time) ([]JournalPoint, error) {
	day := dateOnly(today)
	entries, err := s.ledger.Range(userID, day.AddDate(0, 0, -29), endOfDay(day), SourceJournal, OrderAsc)
	if err != nil {
		return nil, err
	}

	points := make([]JournalPoint, 0, len(entries))
	for i := range entries {
		if entries[i].Score == nil {
			continue
		}
		points = append(points, JournalPoint{
			Date:  entries[i].CreatedAt.UTC().Format(dateLayout),
			Score: *entries[i].Score,
		})
	}
	return points, nil
}

func endOfDay(day time.Time) time.Time {
	return day.Add(24*time.Hour - time.Nanosecond)
}
