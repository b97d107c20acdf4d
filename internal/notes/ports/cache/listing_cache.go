// Package cache defines the caching interface for note listings.
package cache

import (
	"context"

	"briefnote/internal/notes/domain/entities"
)

// ListingCache определяет интерфейс кэша списков заметок по владельцу.
type ListingCache interface {
	// GetListing возвращает закэшированный список заметок владельца.
	// Промах кэша возвращается как (nil, nil).
	GetListing(ctx context.Context, ownerID string) ([]*entities.Note, error)

	// SetListing сохраняет список заметок владельца.
	SetListing(ctx context.Context, ownerID string, notes []*entities.Note) error

	// InvalidateListing сбрасывает закэшированный список владельца.
	InvalidateListing(ctx context.Context, ownerID string) error

	// Close закрывает соединение с кэшем.
	Close() error
}
