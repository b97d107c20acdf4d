// Package postgres provides PostgreSQL implementations of repositories.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"briefnote/internal/notes/domain/entities"
	"briefnote/internal/notes/ports/repositories"
	"briefnote/pkg/logger"
)

// Коды ошибок Postgres, различаемые репозиторием.
const (
	pgErrUniqueViolation       = "23505"
	pgErrInsufficientPrivilege = "42501"
)

// PgxPoolInterface описывает подмножество pgxpool.Pool, используемое репозиторием.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Insert сохраняет новую заметку в БД и возвращает созданную строку.
func (r *NoteRepository) Insert(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Insert"))
	log.Debug(ctx, "creating new note", zap.String("owner_id", note.OwnerID))

	var created entities.Note
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (owner_id, title, content)
         VALUES ($1, $2, $3)
         RETURNING id, owner_id, title, content, summary, created_at`,
		note.OwnerID, note.Title, note.Content,
	).Scan(&created.ID, &created.OwnerID, &created.Title, &created.Content, &created.Summary, &created.CreatedAt)

	if err != nil {
		if mapped := classifyPgError(err); mapped != nil {
			log.Debug(ctx, "insert rejected by store", zap.Error(err))
			return nil, mapped
		}
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("note_id", created.ID))
	return &created, nil
}

// GetByID получает заметку по ID в рамках заметок владельца.
func (r *NoteRepository) GetByID(ctx context.Context, noteID, ownerID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))
	log.Debug(ctx, "getting note", zap.String("note_id", noteID), zap.String("owner_id", ownerID))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`SELECT id, owner_id, title, content, summary, created_at
         FROM notes
         WHERE id = $1 AND owner_id = $2`,
		noteID, ownerID,
	).Scan(&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.Summary, &note.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("note_id", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// ListByOwner получает все заметки владельца, новые первыми.
func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByOwner"))
	log.Debug(ctx, "listing notes", zap.String("owner_id", ownerID))

	rows, err := r.pool.Query(ctx,
		`SELECT id, owner_id, title, content, summary, created_at
         FROM notes
         WHERE owner_id = $1
         ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.Summary, &note.CreatedAt)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Update обновляет заголовок и содержимое заметки владельца.
func (r *NoteRepository) Update(ctx context.Context, noteID, ownerID, title, content string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("note_id", noteID))

	result, err := r.pool.Exec(ctx,
		`UPDATE notes SET title = $1, content = $2 WHERE id = $3 AND owner_id = $4`,
		title, content, noteID, ownerID,
	)
	if err != nil {
		if mapped := classifyPgError(err); mapped != nil {
			log.Debug(ctx, "update rejected by store", zap.Error(err))
			return mapped
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return fmt.Errorf("failed to update note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return entities.ErrNoteNotFound
	}

	return nil
}

// UpdateSummary записывает summary с оптимистической проверкой содержимого:
// строка обновляется только если content совпадает со снимком.
func (r *NoteRepository) UpdateSummary(ctx context.Context, noteID, ownerID, summary, contentSnapshot string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.UpdateSummary"))
	log.Debug(ctx, "persisting summary", zap.String("note_id", noteID))

	result, err := r.pool.Exec(ctx,
		`UPDATE notes SET summary = $1 WHERE id = $2 AND owner_id = $3 AND content = $4`,
		summary, noteID, ownerID, contentSnapshot,
	)
	if err != nil {
		if mapped := classifyPgError(err); mapped != nil {
			log.Debug(ctx, "summary update rejected by store", zap.Error(err))
			return mapped
		}
		log.Error(ctx, "failed to persist summary", zap.Error(err))
		return fmt.Errorf("failed to persist summary: %w", err)
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	// Ноль строк: либо заметки нет, либо содержимое изменилось.
	_, err = r.GetByID(ctx, noteID, ownerID)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return entities.ErrNoteNotFound
		}
		return fmt.Errorf("failed to verify note after summary update: %w", err)
	}

	log.Debug(ctx, "content changed during summarization", zap.String("note_id", noteID))
	return entities.ErrContentChanged
}

// Delete удаляет заметку владельца.
func (r *NoteRepository) Delete(ctx context.Context, noteID, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("note_id", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND owner_id = $2`,
		noteID, ownerID,
	)
	if err != nil {
		if mapped := classifyPgError(err); mapped != nil {
			log.Debug(ctx, "delete rejected by store", zap.Error(err))
			return mapped
		}
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return entities.ErrNoteNotFound
	}

	return nil
}

// classifyPgError переводит известные коды ошибок Postgres в доменные ошибки.
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch {
	case pgErr.Code == pgErrUniqueViolation:
		return fmt.Errorf("%w: %s", entities.ErrDuplicateTitle, pgErr.Message)
	case pgErr.Code == pgErrInsufficientPrivilege,
		strings.Contains(pgErr.Message, "permission denied"):
		return fmt.Errorf("%w: %s", entities.ErrPermissionDenied, pgErr.Message)
	default:
		return nil
	}
}
