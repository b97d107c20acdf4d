package noterepo_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefnote/internal/notes/adapters/postgres"
	"briefnote/internal/notes/domain/entities"
)

func TestNoteRepository_GetByID(t *testing.T) {
	ctx := testContext(t)

	noteID := "note-1"
	ownerID := "user-123"
	summary := "short recap"
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное получение заметки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, owner_id, title, content, summary, created_at FROM notes .+").
			WithArgs(noteID, ownerID).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "owner_id", "title", "content", "summary", "created_at"}).
					AddRow(noteID, ownerID, "Meeting", "transcript", &summary, createdAt),
			)

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.GetByID(ctx, noteID, ownerID)

		require.NoError(t, err)
		require.NotNil(t, note)
		assert.Equal(t, noteID, note.ID)
		assert.Equal(t, ownerID, note.OwnerID)
		require.NotNil(t, note.Summary)
		assert.Equal(t, summary, *note.Summary)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Заметка не найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, owner_id, title, content, summary, created_at FROM notes .+").
			WithArgs(noteID, ownerID).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.GetByID(ctx, noteID, ownerID)

		assert.Nil(t, note)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Чужая заметка не видна владельцу", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		// Фильтр по owner_id делает чужую заметку неотличимой от отсутствующей.
		mock.ExpectQuery("SELECT id, owner_id, title, content, summary, created_at FROM notes .+").
			WithArgs(noteID, "another-user").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.GetByID(ctx, noteID, "another-user")

		assert.Nil(t, note)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Общая ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, owner_id, title, content, summary, created_at FROM notes .+").
			WithArgs(noteID, ownerID).
			WillReturnError(errors.New("database connection error"))

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.GetByID(ctx, noteID, ownerID)

		assert.Nil(t, note)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get note")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
