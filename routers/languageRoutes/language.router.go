package languageRoutes

import (
	languageController "codequest/controllers/language"
	"codequest/middleware"
	languageValidator "codequest/validators/language"

	"github.com/gofiber/fiber/v2"
)

func SetupLanguageRoutes(app *fiber.App) {
	languageGroup := app.Group("/api/languages")

	languageGroup.Get("/", middleware.JWTMiddleware, languageController.GetAllLanguages)

	// Admin language management
	languageGroup.Post("/", middleware.JWTMiddleware, middleware.AdminMiddleware, languageValidator.CreateLanguage(), languageController.CreateLanguage)
	languageGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, languageValidator.UpdateLanguage(), languageController.UpdateLanguage)
	languageGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, languageController.DeleteLanguage)
}
