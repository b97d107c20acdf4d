// Package dto содержит структуры запросов и ответов HTTP API заметок.
package dto

import (
	"time"

	"briefnote/internal/notes/domain/entities"
)

// CreateNoteRequest запрос на создание заметки.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest запрос на обновление заметки.
type UpdateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteResponse представление заметки в ответах API.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   *string   `json:"summary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ListNotesResponse ответ со списком заметок.
type ListNotesResponse struct {
	Notes []*NoteResponse `json:"notes"`
}

// ErrorResponse ответ с сообщением об ошибке.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NoteFromEntity конвертирует доменную заметку в представление API.
func NoteFromEntity(note *entities.Note) *NoteResponse {
	if note == nil {
		return nil
	}
	return &NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Summary:   note.Summary,
		CreatedAt: note.CreatedAt,
	}
}

// ListFromEntities конвертирует список доменных заметок в представление API.
func ListFromEntities(notes []*entities.Note) *ListNotesResponse {
	out := make([]*NoteResponse, len(notes))
	for i, note := range notes {
		out[i] = NoteFromEntity(note)
	}
	return &ListNotesResponse{Notes: out}
}
