package noteusecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"briefnote/internal/notes/domain/entities"
)

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Insert(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID, ownerID string) (*entities.Note, error) {
	args := m.Called(ctx, noteID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Update(ctx context.Context, noteID, ownerID, title, content string) error {
	return m.Called(ctx, noteID, ownerID, title, content).Error(0)
}

func (m *mockNoteRepository) UpdateSummary(ctx context.Context, noteID, ownerID, summary, contentSnapshot string) error {
	return m.Called(ctx, noteID, ownerID, summary, contentSnapshot).Error(0)
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID, ownerID string) error {
	return m.Called(ctx, noteID, ownerID).Error(0)
}

type mockSummarizer struct {
	mock.Mock
}

func (m *mockSummarizer) Summarize(ctx context.Context, content string) (string, error) {
	args := m.Called(ctx, content)
	return args.String(0), args.Error(1)
}

type mockListingCache struct {
	mock.Mock
}

func (m *mockListingCache) GetListing(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockListingCache) SetListing(ctx context.Context, ownerID string, notes []*entities.Note) error {
	return m.Called(ctx, ownerID, notes).Error(0)
}

func (m *mockListingCache) InvalidateListing(ctx context.Context, ownerID string) error {
	return m.Called(ctx, ownerID).Error(0)
}

func (m *mockListingCache) Close() error {
	return m.Called().Error(0)
}

func testIdentity() *entities.Identity {
	return &entities.Identity{
		UserID:      "user-123",
		Email:       "user@example.com",
		DisplayName: "Test User",
	}
}
