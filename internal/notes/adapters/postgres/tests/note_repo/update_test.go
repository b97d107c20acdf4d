package noterepo_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefnote/internal/notes/adapters/postgres"
	"briefnote/internal/notes/domain/entities"
)

func TestNoteRepository_Update(t *testing.T) {
	ctx := testContext(t)

	noteID := "note-1"
	ownerID := "user-123"

	t.Run("Успешное обновление заметки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE notes SET title = .+").
			WithArgs("New title", "new content", noteID, ownerID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := postgres.NewNoteRepository(mock)
		err = repo.Update(ctx, noteID, ownerID, "New title", "new content")

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Заметка не найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE notes SET title = .+").
			WithArgs("New title", "new content", noteID, ownerID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := postgres.NewNoteRepository(mock)
		err = repo.Update(ctx, noteID, ownerID, "New title", "new content")

		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Дублирующийся заголовок", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE notes SET title = .+").
			WithArgs("New title", "new content", noteID, ownerID).
			WillReturnError(&pgconn.PgError{
				Code:    "23505",
				Message: `duplicate key value violates unique constraint "notes_owner_title_unique"`,
			})

		repo := postgres.NewNoteRepository(mock)
		err = repo.Update(ctx, noteID, ownerID, "New title", "new content")

		assert.ErrorIs(t, err, entities.ErrDuplicateTitle)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Общая ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE notes SET title = .+").
			WithArgs("New title", "new content", noteID, ownerID).
			WillReturnError(errors.New("database connection error"))

		repo := postgres.NewNoteRepository(mock)
		err = repo.Update(ctx, noteID, ownerID, "New title", "new content")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update note")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
