package noteusecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"briefnote/internal/notes/app"
	"briefnote/internal/notes/domain/entities"
)

func TestListNotes(t *testing.T) {
	identity := testIdentity()
	now := time.Now()

	storedNotes := []*entities.Note{
		{ID: "note-2", OwnerID: identity.UserID, Title: "Newer", Content: "b", CreatedAt: now},
		{ID: "note-1", OwnerID: identity.UserID, Title: "Older", Content: "a", CreatedAt: now.Add(-time.Hour)},
	}

	t.Run("success - notes listed from repository and cached", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockCache := new(mockListingCache)
		mockCache.On("GetListing", mock.Anything, identity.UserID).Return(nil, nil).Once()
		mockRepo.On("ListByOwner", mock.Anything, identity.UserID).Return(storedNotes, nil).Once()
		mockCache.On("SetListing", mock.Anything, identity.UserID, storedNotes).Return(nil).Once()

		useCase := app.NewNoteUseCase(mockRepo, new(mockSummarizer), mockCache)

		notes := useCase.ListNotes(context.Background(), identity)

		assert.Equal(t, storedNotes, notes)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("success - cache hit skips repository", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockCache := new(mockListingCache)
		mockCache.On("GetListing", mock.Anything, identity.UserID).Return(storedNotes, nil).Once()

		useCase := app.NewNoteUseCase(mockRepo, new(mockSummarizer), mockCache)

		notes := useCase.ListNotes(context.Background(), identity)

		assert.Equal(t, storedNotes, notes)
		mockRepo.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
		mockCache.AssertExpectations(t)
	})

	t.Run("success - works without cache", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("ListByOwner", mock.Anything, identity.UserID).Return(storedNotes, nil).Once()

		useCase := app.NewNoteUseCase(mockRepo, new(mockSummarizer), nil)

		notes := useCase.ListNotes(context.Background(), identity)

		assert.Equal(t, storedNotes, notes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no identity - empty list returned", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)

		useCase := app.NewNoteUseCase(mockRepo, new(mockSummarizer), nil)

		notes := useCase.ListNotes(context.Background(), nil)

		assert.Empty(t, notes)
		assert.NotNil(t, notes)
		mockRepo.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
	})

	t.Run("repository failure - empty list returned", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("ListByOwner", mock.Anything, identity.UserID).
			Return(nil, errors.New("connection refused")).Once()

		useCase := app.NewNoteUseCase(mockRepo, new(mockSummarizer), nil)

		notes := useCase.ListNotes(context.Background(), identity)

		assert.Empty(t, notes)
		assert.NotNil(t, notes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("cache read failure - repository still consulted", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockCache := new(mockListingCache)
		mockCache.On("GetListing", mock.Anything, identity.UserID).
			Return(nil, errors.New("redis unavailable")).Once()
		mockRepo.On("ListByOwner", mock.Anything, identity.UserID).Return(storedNotes, nil).Once()
		mockCache.On("SetListing", mock.Anything, identity.UserID, storedNotes).Return(nil).Once()

		useCase := app.NewNoteUseCase(mockRepo, new(mockSummarizer), mockCache)

		notes := useCase.ListNotes(context.Background(), identity)

		assert.Equal(t, storedNotes, notes)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache write failure - result still returned", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockCache := new(mockListingCache)
		mockCache.On("GetListing", mock.Anything, identity.UserID).Return(nil, nil).Once()
		mockRepo.On("ListByOwner", mock.Anything, identity.UserID).Return(storedNotes, nil).Once()
		mockCache.On("SetListing", mock.Anything, identity.UserID, storedNotes).
			Return(errors.New("redis unavailable")).Once()

		useCase := app.NewNoteUseCase(mockRepo, new(mockSummarizer), mockCache)

		notes := useCase.ListNotes(context.Background(), identity)

		assert.Equal(t, storedNotes, notes)
		mockCache.AssertExpectations(t)
	})
}
