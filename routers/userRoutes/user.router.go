package userRoutes

import (
	userController "codequest/controllers/user"
	"codequest/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/user")

	userGroup.Get("/", middleware.JWTMiddleware, userController.GetProfile)
	userGroup.Post("/avatar", middleware.JWTMiddleware, userController.UploadAvatar)
}
