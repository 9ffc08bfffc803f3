package courseValidator

import (
	"strings"

	courseController "codequest/controllers/course"
	"codequest/middleware"

	"github.com/gofiber/fiber/v2"
)

var difficultyLevels = map[string]bool{"easy": true, "medium": true, "hard": true}
var courseStatuses = map[string]bool{"draft": true, "active": true, "inactive": true}
var courseCategories = map[string]bool{"frontend": true, "backend": true, "database": true, "mobile": true}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.CoursePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 255 {
			errors["title"] = "Title cannot be longer than 255 characters!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if !difficultyLevels[reqData.DifficultyLevel] {
			errors["difficulty_level"] = "Difficulty must be easy, medium or hard!"
		}

		if !courseStatuses[reqData.Status] {
			errors["status"] = "Status must be draft, active or inactive!"
		}

		if !courseCategories[reqData.Category] {
			errors["category"] = "Category must be frontend, backend, database or mobile!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware; fields are optional but must be valid
// when provided
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.CoursePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != "" && len(reqData.Title) > 255 {
			errors["title"] = "Title cannot be longer than 255 characters!"
		}
		if reqData.DifficultyLevel != "" && !difficultyLevels[reqData.DifficultyLevel] {
			errors["difficulty_level"] = "Difficulty must be easy, medium or hard!"
		}
		if reqData.Status != "" && !courseStatuses[reqData.Status] {
			errors["status"] = "Status must be draft, active or inactive!"
		}
		if reqData.Category != "" && !courseCategories[reqData.Category] {
			errors["category"] = "Category must be frontend, backend, database or mobile!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
