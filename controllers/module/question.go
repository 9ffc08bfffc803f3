package moduleController

import (
	"codequest/database"
	"codequest/middleware"
	courseModels "codequest/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OptionPayload is one answer option in a question request
type OptionPayload struct {
	OptionText string `json:"option_text" validate:"required"`
	IsCorrect  *bool  `json:"is_correct" validate:"required"`
}

// QuestionPayload is the validated create/update request body for a question
type QuestionPayload struct {
	QuestionText string          `json:"question_text" validate:"required"`
	QuestionType string          `json:"question_type" validate:"required,oneof=multiple_choice true_false open_ended"`
	Points       int             `json:"points" validate:"required,min=1"`
	OrderIndex   *int            `json:"order_index" validate:"required,min=0"`
	Explanation  string          `json:"explanation"`
	Options      []OptionPayload `json:"options" validate:"required,min=2,dive"`
}

// CreateQuestion adds a question with its options to a module (admin only)
func CreateQuestion(c *fiber.Ctx) error {
	moduleID, err := c.ParamsInt("id")
	if err != nil || moduleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*QuestionPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question := courseModels.ModuleQuestion{
		ModuleID:     module.ID,
		QuestionText: reqData.QuestionText,
		QuestionType: reqData.QuestionType,
		Points:       reqData.Points,
		OrderIndex:   *reqData.OrderIndex,
		Explanation:  reqData.Explanation,
	}
	for _, option := range reqData.Options {
		question.Options = append(question.Options, courseModels.ModuleQuestionOption{
			OptionText: option.OptionText,
			IsCorrect:  *option.IsCorrect,
		})
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// UpdateQuestion replaces a question's fields and its full option set
// (admin only)
func UpdateQuestion(c *fiber.Ctx) error {
	moduleID, err := c.ParamsInt("id")
	if err != nil || moduleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}
	questionID, err := c.ParamsInt("question_id")
	if err != nil || questionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question id!", nil)
	}

	var question courseModels.ModuleQuestion
	if err := database.Database.Db.Where("id = ?", questionID).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if question.ModuleID != uint(moduleID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question does not belong to this module!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*QuestionPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		question.QuestionText = reqData.QuestionText
		question.QuestionType = reqData.QuestionType
		question.Points = reqData.Points
		question.OrderIndex = *reqData.OrderIndex
		question.Explanation = reqData.Explanation

		if err := tx.Save(&question).Error; err != nil {
			return err
		}

		// Options are replaced wholesale
		if err := tx.Where("question_id = ?", question.ID).Delete(&courseModels.ModuleQuestionOption{}).Error; err != nil {
			return err
		}
		for _, option := range reqData.Options {
			newOption := courseModels.ModuleQuestionOption{
				QuestionID: question.ID,
				OptionText: option.OptionText,
				IsCorrect:  *option.IsCorrect,
			}
			if err := tx.Create(&newOption).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	database.Database.Db.Preload("Options").First(&question, question.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// DeleteQuestion removes a question and its options (admin only)
func DeleteQuestion(c *fiber.Ctx) error {
	moduleID, err := c.ParamsInt("id")
	if err != nil || moduleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}
	questionID, err := c.ParamsInt("question_id")
	if err != nil || questionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question id!", nil)
	}

	var question courseModels.ModuleQuestion
	if err := database.Database.Db.Where("id = ?", questionID).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if question.ModuleID != uint(moduleID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question does not belong to this module!", nil)
	}

	if err := database.Database.Db.Select("Options").Delete(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
