// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"briefnote/internal/notes/adapters/http/middleware"
	"briefnote/internal/notes/adapters/http/notes"
	servicesPorts "briefnote/internal/notes/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, noteUseCase notes.NoteUseCase, tokenService servicesPorts.TokenService) {
	notesHandler := notes.NewHandler(noteUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Проверка работоспособности (публичная).
	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Маршруты заметок (требуют авторизации).
	notesRoutes := apiV1.Group("/notes")
	notesRoutes.Use(middleware.NewAuthMiddleware(tokenService))
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Put("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)
	notesRoutes.Post("/:note_id/summarize", notesHandler.SummarizeNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
