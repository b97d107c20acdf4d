// Package services defines service interfaces for the notes service.
package services

import "context"

// Summarizer определяет интерфейс внешнего сервиса суммаризации текста.
type Summarizer interface {
	// Summarize возвращает сжатое изложение переданного текста.
	Summarize(ctx context.Context, content string) (string, error)
}
