// Package entities defines the domain entities for the notes service.
package entities

import (
	"errors"
	"time"
)

// Ошибки уровня хранилища заметок.
var (
	ErrNoteNotFound     = errors.New("note not found or not owned by user")
	ErrDuplicateTitle   = errors.New("note title already exists for this owner")
	ErrPermissionDenied = errors.New("store denied access to the note")
	ErrContentChanged   = errors.New("note content changed since it was read")
)

// Note представляет собой заметку пользователя.
// Summary отсутствует (nil) до первой успешной суммаризации.
type Note struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   *string   `json:"summary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNote creates a new note with the given owner ID, title, and content.
func NewNote(ownerID, title, content string) *Note {
	return &Note{
		OwnerID:   ownerID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
	}
}
