package routes

import (
	"financing-backend/internal/handler"
	"financing-backend/internal/middleware"
	"financing-backend/internal/repository"
	"financing-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo)
	hdl := handler.NewAuthHandler(uc)

	// Auth Routes (Public)
	app.Post("/api/register", hdl.Register)
	app.Post("/api/login", hdl.Login)

	// Profile Routes (Protected)
	api := app.Group("/api", middleware.Auth)
	api.Get("/profile", hdl.GetProfile)
	api.Put("/profile", hdl.UpdateProfile)
	api.Post("/change-password", hdl.ChangePassword)
}
