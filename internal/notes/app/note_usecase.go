package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"briefnote/internal/notes/domain/entities"
	"briefnote/internal/notes/ports/cache"
	"briefnote/internal/notes/ports/repositories"
	"briefnote/internal/notes/ports/services"
	"briefnote/pkg/logger"
)

// NoteUseCase представляет собой бизнес-логику жизненного цикла заметок:
// создание, чтение, изменение, удаление и суммаризацию.
type NoteUseCase struct {
	noteRepo     repositories.NoteRepository
	summarizer   services.Summarizer
	listingCache cache.ListingCache
	activity     *ActivityTracker
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
// listingCache может быть nil, тогда кэширование списков отключено.
func NewNoteUseCase(noteRepo repositories.NoteRepository, summarizer services.Summarizer, listingCache cache.ListingCache) *NoteUseCase {
	return &NoteUseCase{
		noteRepo:     noteRepo,
		summarizer:   summarizer,
		listingCache: listingCache,
		activity:     NewActivityTracker(),
	}
}

// Activity возвращает трекер состояний заметок.
func (uc *NoteUseCase) Activity() *ActivityTracker {
	return uc.activity
}

// CreateNote создает новую заметку для пользователя.
func (uc *NoteUseCase) CreateNote(ctx context.Context, identity *entities.Identity, title, content string) (*entities.Note, error) {
	if !identity.Valid() {
		return nil, ErrUnauthenticated
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	note := entities.NewNote(identity.UserID, strings.TrimSpace(title), content)
	created, err := uc.noteRepo.Insert(ctx, note)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrDuplicateTitle):
			return nil, ErrDuplicateTitle
		case errors.Is(err, entities.ErrPermissionDenied):
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, err)
		default:
			return nil, fmt.Errorf("failed to create note: %w", err)
		}
	}

	uc.invalidateListing(ctx, identity.UserID)
	return created, nil
}

// ListNotes возвращает список заметок пользователя, новые первыми.
// Ошибки чтения не прерывают выполнение: возвращается пустой список,
// а сама ошибка логируется для наблюдаемости.
func (uc *NoteUseCase) ListNotes(ctx context.Context, identity *entities.Identity) []*entities.Note {
	log := logger.Log(ctx)

	if !identity.Valid() {
		log.Warn(ctx, "list notes requested without identity")
		return []*entities.Note{}
	}

	if uc.listingCache != nil {
		cached, err := uc.listingCache.GetListing(ctx, identity.UserID)
		if err != nil {
			log.Error(ctx, "failed to read listing cache", zap.Error(err))
		} else if cached != nil {
			return cached
		}
	}

	notes, err := uc.noteRepo.ListByOwner(ctx, identity.UserID)
	if err != nil {
		log.Error(ctx, "failed to list notes, returning empty result",
			zap.String("owner_id", identity.UserID),
			zap.Error(err))
		return []*entities.Note{}
	}

	if uc.listingCache != nil {
		if err := uc.listingCache.SetListing(ctx, identity.UserID, notes); err != nil {
			log.Error(ctx, "failed to populate listing cache", zap.Error(err))
		}
	}

	return notes
}

// UpdateNote обновляет заголовок и содержимое существующей заметки.
// Идентификатор, владелец и время создания остаются неизменными.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, identity *entities.Identity, noteID, title, content string) (*entities.Note, error) {
	if !identity.Valid() {
		return nil, ErrUnauthenticated
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	if err := uc.activity.BeginEditing(noteID); err != nil {
		return nil, err
	}
	defer uc.activity.End(noteID)

	err := uc.noteRepo.Update(ctx, noteID, identity.UserID, strings.TrimSpace(title), content)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrNoteNotFound):
			return nil, ErrNotFound
		case errors.Is(err, entities.ErrDuplicateTitle):
			return nil, ErrDuplicateTitle
		case errors.Is(err, entities.ErrPermissionDenied):
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, err)
		default:
			return nil, fmt.Errorf("failed to update note: %w", err)
		}
	}

	note, err := uc.noteRepo.GetByID(ctx, noteID, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated note: %w", err)
	}

	uc.invalidateListing(ctx, identity.UserID)
	return note, nil
}

// DeleteNote удаляет заметку. Операция идемпотентна:
// удаление отсутствующей заметки считается успешным.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, identity *entities.Identity, noteID string) error {
	if !identity.Valid() {
		return ErrUnauthenticated
	}

	err := uc.noteRepo.Delete(ctx, noteID, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrNoteNotFound):
			// Конечное состояние совпадает: заметки нет.
			logger.Log(ctx).Debug(ctx, "delete of absent note treated as success",
				zap.String("note_id", noteID))
		case errors.Is(err, entities.ErrPermissionDenied):
			return fmt.Errorf("%w: %s", ErrPermissionDenied, err)
		default:
			return fmt.Errorf("failed to delete note: %w", err)
		}
	}

	uc.invalidateListing(ctx, identity.UserID)
	return nil
}

// SummarizeNote запрашивает у внешнего сервиса сжатое изложение содержимого
// заметки и сохраняет его. Снимок содержимого берется в момент вызова;
// если содержимое изменилось за время суммаризации, результат отбрасывается
// с ошибкой ErrStaleSummary. Для одной заметки допускается не более одной
// суммаризации одновременно.
func (uc *NoteUseCase) SummarizeNote(ctx context.Context, identity *entities.Identity, noteID string) (*entities.Note, error) {
	if !identity.Valid() {
		return nil, ErrUnauthenticated
	}

	note, err := uc.noteRepo.GetByID(ctx, noteID, identity.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	if err := uc.activity.BeginSummarizing(noteID); err != nil {
		return nil, err
	}
	// Маркер снимается безусловно, независимо от исхода.
	defer uc.activity.End(noteID)

	snapshot := note.Content

	summary, err := uc.summarizer.Summarize(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSummarizationFailed, err)
	}
	if strings.TrimSpace(summary) == "" {
		return nil, fmt.Errorf("%w: empty summary returned", ErrSummarizationFailed)
	}

	err = uc.noteRepo.UpdateSummary(ctx, noteID, identity.UserID, summary, snapshot)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrContentChanged):
			return nil, ErrStaleSummary
		case errors.Is(err, entities.ErrNoteNotFound):
			return nil, ErrNotFound
		default:
			return nil, fmt.Errorf("failed to persist summary: %w", err)
		}
	}

	uc.invalidateListing(ctx, identity.UserID)

	note.Summary = &summary
	return note, nil
}

// validateContent проверяет содержимое заметки до обращения к хранилищу.
func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content must not be empty", ErrValidation)
	}
	return nil
}

// invalidateListing сбрасывает кэш списка заметок владельца.
// Ошибка кэша не прерывает операцию, но логируется.
func (uc *NoteUseCase) invalidateListing(ctx context.Context, ownerID string) {
	if uc.listingCache == nil {
		return
	}
	if err := uc.listingCache.InvalidateListing(ctx, ownerID); err != nil {
		logger.Log(ctx).Error(ctx, "failed to invalidate listing cache",
			zap.String("owner_id", ownerID),
			zap.Error(err))
	}
}
