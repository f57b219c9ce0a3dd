package mood

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SortOrder selects the timestamp ordering of a range query.
type SortOrder string

const (
	OrderAsc  SortOrder = "ASC"
	OrderDesc SortOrder = "DESC"
)

// Ledger is the append-only store of mood entries. Querying a user with no
// entries returns an empty slice, not an error.
type Ledger interface {
	// Append inserts one entry atomically and assigns its id.
	Append(entry *MoodEntry) error

	// Range returns entries with created_at in [from, to] inclusive. A zero
	// from means unbounded history. source filters by entry source when
	// non-empty. Equal timestamps keep insertion order via the id tiebreak.
	Range(userID uuid.UUID, from, to time.Time, source string, order SortOrder) ([]MoodEntry, error)

	// Latest returns the most recent entries, created_at descending with
	// descending id breaking ties.
	Latest(userID uuid.UUID, limit int) ([]MoodEntry, error)

	// Page returns one page of entries for a source, newest first, plus the
	// total count for that source.
	Page(userID uuid.UUID, source string, limit, offset int) ([]MoodEntry, int64, error)
}

// GormLedger is the PostgreSQL-backed Ledger.
type GormLedger struct {
	db *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

func (l *GormLedger) Append(entry *MoodEntry) error {
	if err := l.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append mood entry: %w", err)
	}
	return nil
}

func (l *GormLedger) Range(userID uuid.UUID, from, to time.Time, source string, order SortOrder) ([]MoodEntry, error) {
	query := l.db.Where("user_id = ? AND created_at <= ?", userID, to)
	if !from.IsZero() {
		query = query.Where("created_at >= ?", from)
	}
	if source != "" {
		query = query.Where("source = ?", source)
	}

	var entries []MoodEntry
	err := query.Order("created_at " + string(order) + ", id " + string(order)).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}
	return entries, nil
}

func (l *GormLedger) Latest(userID uuid.UUID, limit int) ([]MoodEntry, error) {
	var entries []MoodEntry
	err := l.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query latest mood entries: %w", err)
	}
	return entries, nil
}

func (l *GormLedger) Page(userID uuid.UUID, source string, limit, offset int) ([]MoodEntry, int64, error) {
	var total int64
	base := l.db.Model(&MoodEntry{}).Where("user_id = ? AND source = ?", userID, source)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count mood entries: %w", err)
	}

	var entries []MoodEntry
	err := l.db.Where("user_id = ? AND source = ?", userID, source).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to page mood entries: %w", err)
	}
	return entries, total, nil
}
