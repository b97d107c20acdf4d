// Package app implements application business logic for the notes service.
package app

import "errors"

// Ошибки уровня бизнес-логики.
var (
	// ErrUnauthenticated возвращается, когда операция вызвана без идентичности.
	ErrUnauthenticated = errors.New("user not authenticated")

	// ErrValidation возвращается при некорректных входных данных,
	// до обращения к внешним сервисам.
	ErrValidation = errors.New("invalid parameters")

	// ErrNotFound возвращается, когда заметка не существует
	// или принадлежит другому пользователю.
	ErrNotFound = errors.New("note not found")

	// ErrPermissionDenied возвращается, когда хранилище отклонило доступ к строке.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDuplicateTitle возвращается при конфликте уникальности заголовка.
	ErrDuplicateTitle = errors.New("note title already exists")

	// ErrSummarizationInFlight возвращается при повторном запросе суммаризации
	// заметки, для которой суммаризация уже выполняется.
	ErrSummarizationInFlight = errors.New("summarization already in flight for this note")

	// ErrNoteBusy возвращается при недопустимом переходе состояния заметки.
	ErrNoteBusy = errors.New("note is busy")

	// ErrSummarizationFailed возвращается при ошибке внешнего сервиса суммаризации.
	// Сообщение вышестоящего сервиса сохраняется через обертывание.
	ErrSummarizationFailed = errors.New("summarization failed")

	// ErrStaleSummary возвращается, когда содержимое заметки изменилось
	// за время выполнения суммаризации и результат отброшен.
	ErrStaleSummary = errors.New("note content changed during summarization")
)
