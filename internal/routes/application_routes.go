package routes

import (
	"financing-backend/internal/handler"
	"financing-backend/internal/middleware"
	"financing-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupApplicationRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewApplicationRepository(db)
	hdl := handler.NewApplicationHandler(repo)

	api := app.Group("/api/applications", middleware.Auth)
	api.Get("/", hdl.Index)
	api.Get("/:id", hdl.Show)
	api.Post("/", hdl.Store)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Destroy)
}
