package moduleRoutes

import (
	moduleController "codequest/controllers/module"
	"codequest/middleware"
	moduleValidator "codequest/validators/module"

	"github.com/gofiber/fiber/v2"
)

// SetupModuleRoutes sets up module CRUD, question management and the quiz
// completion flow
func SetupModuleRoutes(app *fiber.App) {
	moduleGroup := app.Group("/api/modules")

	moduleGroup.Get("/", middleware.JWTMiddleware, moduleController.GetAllModules)
	moduleGroup.Get("/:id", middleware.JWTMiddleware, moduleController.GetModule)

	// Admin module management
	moduleGroup.Post("/", middleware.JWTMiddleware, middleware.AdminMiddleware, moduleValidator.CreateModule(), moduleController.CreateModule)
	moduleGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, moduleValidator.UpdateModule(), moduleController.UpdateModule)
	moduleGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, moduleController.DeleteModule)

	// Admin question management
	moduleGroup.Post("/:id/questions", middleware.JWTMiddleware, middleware.AdminMiddleware, moduleValidator.Question(), moduleController.CreateQuestion)
	moduleGroup.Put("/:id/questions/:question_id", middleware.JWTMiddleware, middleware.AdminMiddleware, moduleValidator.Question(), moduleController.UpdateQuestion)
	moduleGroup.Delete("/:id/questions/:question_id", middleware.JWTMiddleware, middleware.AdminMiddleware, moduleController.DeleteQuestion)

	// Quiz flow
	moduleGroup.Post("/:id/questions/:question_id/answer", middleware.JWTMiddleware, moduleValidator.Answer(), moduleController.SubmitAnswer)
	moduleGroup.Post("/:id/complete", middleware.JWTMiddleware, moduleValidator.Completion(), moduleController.CompleteModule)
	moduleGroup.Get("/:id/answers", middleware.JWTMiddleware, moduleController.GetUserAnswers)
}
