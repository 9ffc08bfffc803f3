package moduleController

import (
	"errors"

	"codequest/database"
	"codequest/middleware"
	courseModels "codequest/models/course"
	"codequest/quiz"

	"github.com/gofiber/fiber/v2"
)

// SubmitAnswer grades a single question without recording anything. The
// frontend uses it for instant feedback while the user works through a quiz.
func SubmitAnswer(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID, err := c.ParamsInt("id")
	if err != nil || moduleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}
	questionID, err := c.ParamsInt("question_id")
	if err != nil || questionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question id!", nil)
	}

	reqData, ok := c.Locals("validatedAnswer").(*struct {
		Answer string `json:"answer"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var question courseModels.ModuleQuestion
	if err := database.Database.Db.Preload("Options").Where("id = ?", questionID).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if question.ModuleID != uint(moduleID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question does not belong to this module!", nil)
	}

	result, err := quiz.GradeAnswer(&question, reqData.Answer)
	if err != nil {
		if errors.Is(err, quiz.ErrNoCorrectOption) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Question has no correct answer defined",
			})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check answer!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":         "success",
		"is_correct":     result.IsCorrect,
		"correct_answer": result.CorrectAnswer,
		"points":         result.PointsAwarded,
		"user_answer":    reqData.Answer,
	})
}
