package moduleValidator

import (
	"strings"

	moduleController "codequest/controllers/module"
	"codequest/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateModule validator middleware
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(moduleController.ModulePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 255 {
			errors["title"] = "Title cannot be longer than 255 characters!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}
		if reqData.OrderIndex == nil || *reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must be zero or greater!"
		}
		if strings.TrimSpace(reqData.Duration) == "" {
			errors["duration"] = "Duration is required!"
		}
		if reqData.XP == nil || *reqData.XP < 0 {
			errors["xp"] = "XP reward must be zero or greater!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validator middleware; fields are optional but must be valid
// when provided
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(moduleController.ModulePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != "" && len(reqData.Title) > 255 {
			errors["title"] = "Title cannot be longer than 255 characters!"
		}
		if reqData.OrderIndex != nil && *reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must be zero or greater!"
		}
		if reqData.XP != nil && *reqData.XP < 0 {
			errors["xp"] = "XP reward must be zero or greater!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// Question validates the nested question+options payload shared by the
// create and update endpoints. Exactly one option must be flagged correct
// for gradable question types.
func Question() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(moduleController.QuestionPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			if validationErrors, ok := err.(validator.ValidationErrors); ok {
				for _, fieldError := range validationErrors {
					errors[strings.ToLower(fieldError.Field())] = "Field is missing or invalid: " + fieldError.Tag()
				}
			} else {
				errors["payload"] = "Invalid question payload!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		correctCount := 0
		for _, option := range reqData.Options {
			if option.IsCorrect != nil && *option.IsCorrect {
				correctCount++
			}
		}
		if correctCount != 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"options": "Exactly one option must be marked as correct!",
			})
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// Answer validates the single-question answer check payload
func Answer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answer string `json:"answer"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Answer == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answer": "Answer is required!",
			})
		}

		c.Locals("validatedAnswer", reqData)
		return c.Next()
	}
}

// Completion validates the full quiz submission payload. Completeness
// against the module's actual question set is checked by the evaluator.
func Completion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(moduleController.CompletionPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Answers == nil {
			errors["answers"] = "Answers are required!"
		}
		for _, answer := range reqData.Answers {
			if answer.QuestionID == 0 {
				errors["answers"] = "Every answer must reference a question!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompletion", reqData)
		return c.Next()
	}
}
