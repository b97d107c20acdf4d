// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"

	"briefnote/internal/notes/domain/entities"
)

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
// Все операции ограничены заметками указанного владельца.
type NoteRepository interface {
	Insert(ctx context.Context, note *entities.Note) (*entities.Note, error)
	GetByID(ctx context.Context, noteID, ownerID string) (*entities.Note, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error)
	Update(ctx context.Context, noteID, ownerID, title, content string) error

	// UpdateSummary записывает summary только если содержимое заметки
	// не изменилось с момента снимка contentSnapshot.
	// Возвращает entities.ErrContentChanged при несовпадении.
	UpdateSummary(ctx context.Context, noteID, ownerID, summary, contentSnapshot string) error

	Delete(ctx context.Context, noteID, ownerID string) error
}
