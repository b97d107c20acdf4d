package noteusecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"briefnote/internal/notes/app"
	"briefnote/internal/notes/domain/entities"
)

func TestUpdateNote(t *testing.T) {
	identity := testIdentity()
	noteID := "note-1"
	now := time.Now()

	updatedNote := &entities.Note{
		ID:        noteID,
		OwnerID:   identity.UserID,
		Title:     "New title",
		Content:   "new content",
		CreatedAt: now.Add(-time.Hour),
	}

	tests := []struct {
		name        string
		identity    *entities.Identity
		title       string
		content     string
		setupMocks  func(mockRepo *mockNoteRepository, mockCache *mockListingCache)
		expectedRes *entities.Note
		expectedErr error
	}{
		{
			name:     "success - note updated",
			identity: identity,
			title:    "New title",
			content:  "new content",
			setupMocks: func(mockRepo *mockNoteRepository, mockCache *mockListingCache) {
				mockRepo.On("Update", mock.Anything, noteID, identity.UserID, "New title", "new content").
					Return(nil).Once()
				mockRepo.On("GetByID", mock.Anything, noteID, identity.UserID).
					Return(updatedNote, nil).Once()
				mockCache.On("InvalidateListing", mock.Anything, identity.UserID).Return(nil).Once()
			},
			expectedRes: updatedNote,
		},
		{
			name:        "error - no identity",
			identity:    nil,
			title:       "New title",
			content:     "new content",
			setupMocks:  func(_ *mockNoteRepository, _ *mockListingCache) {},
			expectedErr: app.ErrUnauthenticated,
		},
		{
			name:        "error - empty content rejected",
			identity:    identity,
			title:       "New title",
			content:     "",
			setupMocks:  func(_ *mockNoteRepository, _ *mockListingCache) {},
			expectedErr: app.ErrValidation,
		},
		{
			name:     "error - note not found",
			identity: identity,
			title:    "New title",
			content:  "new content",
			setupMocks: func(mockRepo *mockNoteRepository, _ *mockListingCache) {
				mockRepo.On("Update", mock.Anything, noteID, identity.UserID, "New title", "new content").
					Return(entities.ErrNoteNotFound).Once()
			},
			expectedErr: app.ErrNotFound,
		},
		{
			name:     "error - duplicate title",
			identity: identity,
			title:    "New title",
			content:  "new content",
			setupMocks: func(mockRepo *mockNoteRepository, _ *mockListingCache) {
				mockRepo.On("Update", mock.Anything, noteID, identity.UserID, "New title", "new content").
					Return(entities.ErrDuplicateTitle).Once()
			},
			expectedErr: app.ErrDuplicateTitle,
		},
		{
			name:     "error - permission denied by storage",
			identity: identity,
			title:    "New title",
			content:  "new content",
			setupMocks: func(mockRepo *mockNoteRepository, _ *mockListingCache) {
				mockRepo.On("Update", mock.Anything, noteID, identity.UserID, "New title", "new content").
					Return(entities.ErrPermissionDenied).Once()
			},
			expectedErr: app.ErrPermissionDenied,
		},
		{
			name:     "error - database failure",
			identity: identity,
			title:    "New title",
			content:  "new content",
			setupMocks: func(mockRepo *mockNoteRepository, _ *mockListingCache) {
				mockRepo.On("Update", mock.Anything, noteID, identity.UserID, "New title", "new content").
					Return(errDatabaseOperation).Once()
			},
			expectedErr: errDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mockNoteRepository)
			mockCache := new(mockListingCache)
			tt.setupMocks(mockRepo, mockCache)

			useCase := app.NewNoteUseCase(mockRepo, new(mockSummarizer), mockCache)

			note, err := useCase.UpdateNote(context.Background(), tt.identity, noteID, tt.title, tt.content)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, note)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedRes, note)
			}

			mockRepo.AssertExpectations(t)
			mockCache.AssertExpectations(t)
		})
	}
}

func TestUpdateNoteReleasesActivityMarker(t *testing.T) {
	identity := testIdentity()
	noteID := "note-1"

	mockRepo := new(mockNoteRepository)
	mockRepo.On("Update", mock.Anything, noteID, identity.UserID, "t", "c").
		Return(errDatabaseOperation).Once()

	useCase := app.NewNoteUseCase(mockRepo, new(mockSummarizer), nil)

	_, err := useCase.UpdateNote(context.Background(), identity, noteID, "t", "c")
	require.Error(t, err)

	// Маркер снят: повторная попытка снова доходит до репозитория.
	assert.Equal(t, app.StateIdle, useCase.Activity().State(noteID))
}
