package courseRoutes

import (
	courseController "codequest/controllers/course"
	"codequest/middleware"
	courseValidator "codequest/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course listing, detail, progress and admin CRUD
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Registered before /:id so the literal segment wins
	courseGroup.Get("/user-progress", middleware.JWTMiddleware, courseController.GetUserProgress)

	courseGroup.Get("/", middleware.JWTMiddleware, courseController.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, courseController.GetCourse)
	courseGroup.Get("/:id/modules", middleware.JWTMiddleware, courseController.GetCourseModules)
	courseGroup.Get("/:id/modules/:module_id", middleware.JWTMiddleware, courseController.GetCourseModule)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, courseController.GetCourseProgress)

	// Admin course management
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.AdminMiddleware, courseValidator.CreateCourse(), courseController.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, courseValidator.UpdateCourse(), courseController.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, courseController.DeleteCourse)
}
