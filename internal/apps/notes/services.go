package notes

import (
	"errors"

	"github.com/feelup-app/feelup-backend/internal/apps/mood"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNoteNotFound = errors.New("note not found")

// NoteService manages private journal notes. It also feeds the mood coach
// view through the mood.NotesProvider interface.
type NoteService struct {
	db *gorm.DB
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{db: db}
}

func (s *NoteService) Create(userID uuid.UUID, title, body, tags string) (*JournalNote, error) {
	if body == "" {
		return nil, errors.New("note body is required")
	}

	note := &JournalNote{
		UserID: userID,
		Title:  title,
		Body:   body,
		Tags:   tags,
	}
	if err := s.db.Create(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

// List returns the user's notes, pinned first, then newest first.
func (s *NoteService) List(userID uuid.UUID) ([]JournalNote, error) {
	var notes []JournalNote
	err := s.db.Where("user_id = ?", userID).
		Order("pinned DESC, created_at DESC").
		Find(&notes).Error
	return notes, err
}

// TogglePin flips a note's pinned flag and returns the new state.
func (s *NoteService) TogglePin(noteID, userID uuid.UUID) (bool, error) {
	var note JournalNote
	err := s.db.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNoteNotFound
		}
		return false, err
	}

	note.Pinned = !note.Pinned
	if err := s.db.Save(&note).Error; err != nil {
		return false, err
	}
	return note.Pinned, nil
}

func (s *NoteService) Delete(noteID, userID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", noteID, userID).Delete(&JournalNote{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// LatestNote implements mood.NotesProvider. A nil note with a nil error
// means the user has no notes yet.
func (s *NoteService) LatestNote(userID uuid.UUID) (*mood.LastNote, error) {
	var note JournalNote
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &mood.LastNote{
		Title:     note.Title,
		Body:      note.Body,
		CreatedAt: note.CreatedAt,
	}, nil
}
