// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"briefnote/internal/notes/adapters/http/dto"
	"briefnote/internal/notes/adapters/http/middleware"
	"briefnote/internal/notes/app"
	"briefnote/internal/notes/domain/entities"
	"briefnote/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreateNote    = "handling create note request"
	LogHandlerListNotes     = "handling list notes request"
	LogHandlerUpdateNote    = "handling update note request"
	LogHandlerDeleteNote    = "handling delete note request"
	LogHandlerSummarizeNote = "handling summarize note request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgNotAuthenticated   = "user not authenticated"
)

// NoteUseCase описывает бизнес-логику жизненного цикла заметок,
// используемую обработчиками.
type NoteUseCase interface {
	CreateNote(ctx context.Context, identity *entities.Identity, title, content string) (*entities.Note, error)
	ListNotes(ctx context.Context, identity *entities.Identity) []*entities.Note
	UpdateNote(ctx context.Context, identity *entities.Identity, noteID, title, content string) (*entities.Note, error)
	DeleteNote(ctx context.Context, identity *entities.Identity, noteID string) error
	SummarizeNote(ctx context.Context, identity *entities.Identity, noteID string) (*entities.Note, error)
}

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteUseCase NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase NoteUseCase) *Handler {
	return &Handler{
		noteUseCase: noteUseCase,
	}
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	userCtx, identity, ok := requestIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(userCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteUseCase.CreateNote(userCtx, identity, req.Title, req.Content)
	if err != nil {
		log.Error(userCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NoteFromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение списка заметок пользователя.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	userCtx, identity, ok := requestIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(userCtx, LogHandlerListNotes)

	notes := h.noteUseCase.ListNotes(userCtx, identity)

	if err := ctx.JSON(dto.ListFromEntities(notes)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	userCtx, identity, ok := requestIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(userCtx, LogHandlerUpdateNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(userCtx, ErrMsgInvalidNoteID)
		return badRequest(ctx, ErrMsgInvalidNoteID)
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteUseCase.UpdateNote(userCtx, identity, noteID, req.Title, req.Content)
	if err != nil {
		log.Error(userCtx, "failed to update note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NoteFromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	userCtx, identity, ok := requestIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(userCtx, LogHandlerDeleteNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(userCtx, ErrMsgInvalidNoteID)
		return badRequest(ctx, ErrMsgInvalidNoteID)
	}

	if err := h.noteUseCase.DeleteNote(userCtx, identity, noteID); err != nil {
		log.Error(userCtx, "failed to delete note", zap.Error(err))
		return handleError(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// SummarizeNote обрабатывает запрос на суммаризацию заметки.
func (h *Handler) SummarizeNote(ctx fiber.Ctx) error {
	userCtx, identity, ok := requestIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.SummarizeNote"))
	log.Debug(userCtx, LogHandlerSummarizeNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(userCtx, ErrMsgInvalidNoteID)
		return badRequest(ctx, ErrMsgInvalidNoteID)
	}

	note, err := h.noteUseCase.SummarizeNote(userCtx, identity, noteID)
	if err != nil {
		log.Error(userCtx, "failed to summarize note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NoteFromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// requestIdentity извлекает контекст запроса и идентичность пользователя.
func requestIdentity(ctx fiber.Ctx) (context.Context, *entities.Identity, bool) {
	userCtx, ok := ctx.Locals(middleware.UserContextKey).(context.Context)
	if !ok {
		userCtx = ctx.Context() // Запасной вариант
	}

	identity, ok := middleware.IdentityFromContext(userCtx)
	return userCtx, identity, ok
}

func unauthorized(ctx fiber.Ctx) error {
	if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": ErrMsgNotAuthenticated,
	}); err != nil {
		return fmt.Errorf("failed to send unauthorized response: %w", err)
	}
	return nil
}

func badRequest(ctx fiber.Ctx, msg string) error {
	if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	}); err != nil {
		return fmt.Errorf("failed to send bad request response: %w", err)
	}
	return nil
}

// handleError переводит ошибки бизнес-логики в HTTP статусы
// с человекочитаемым сообщением.
func handleError(ctx fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, app.ErrUnauthenticated):
		status = fiber.StatusUnauthorized
		message = "you must be logged in to manage notes"
	case errors.Is(err, app.ErrValidation):
		status = fiber.StatusBadRequest
		message = "note content must not be empty"
	case errors.Is(err, app.ErrNotFound):
		status = fiber.StatusNotFound
		message = "note not found"
	case errors.Is(err, app.ErrPermissionDenied):
		status = fiber.StatusForbidden
		message = "you do not have access to this note"
	case errors.Is(err, app.ErrDuplicateTitle):
		status = fiber.StatusConflict
		message = "this note title already exists, please use a different title"
	case errors.Is(err, app.ErrSummarizationInFlight):
		status = fiber.StatusConflict
		message = "summarization is already in progress for this note"
	case errors.Is(err, app.ErrNoteBusy):
		status = fiber.StatusConflict
		message = "note is busy, please retry"
	case errors.Is(err, app.ErrStaleSummary):
		status = fiber.StatusConflict
		message = "note content changed during summarization, please retry"
	case errors.Is(err, app.ErrSummarizationFailed):
		status = fiber.StatusBadGateway
		message = "failed to summarize note"
	}

	if sendErr := ctx.Status(status).JSON(fiber.Map{
		"error": message,
	}); sendErr != nil {
		return fmt.Errorf("error sending error response: %w", sendErr)
	}
	return nil
}
