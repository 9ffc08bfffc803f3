package moduleController

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"codequest/database"
	"codequest/middleware"
	"codequest/models"
	courseModels "codequest/models/course"
	"codequest/quiz"
	"codequest/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AnswerInput is one submitted answer in a completion request
type AnswerInput struct {
	QuestionID uint   `json:"question_id"`
	Answer     string `json:"answer"`
}

// CompletionPayload is the validated completion request body
type CompletionPayload struct {
	Answers []AnswerInput `json:"answers"`
}

// isDuplicateKey reports whether err is a unique-constraint violation from
// any of the supported drivers
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || // postgres
		strings.Contains(msg, "UNIQUE constraint") || // sqlite
		strings.Contains(msg, "Duplicate entry") // mysql
}

// CompleteModule grades a full quiz submission and, at 70% or better, records
// the one-time completion and awards the module's XP. Completion record,
// answers, attempt history and the XP/level update commit in one transaction;
// the unique index on (user_id, module_id) is what rejects concurrent
// duplicates, the existence check is only the fast path.
func CompleteModule(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	moduleID, err := c.ParamsInt("id")
	if err != nil || moduleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Preload("Questions.Options").Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedCompletion").(*CompletionPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	answers := make(map[uint]string, len(reqData.Answers))
	for _, input := range reqData.Answers {
		answers[input.QuestionID] = input.Answer
	}

	evaluation, err := quiz.Evaluate(module.Questions, answers)
	if err != nil {
		if errors.Is(err, quiz.ErrIncompleteSubmission) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": "An answer is required for every question of the module!",
			})
		}
		if errors.Is(err, quiz.ErrNoCorrectOption) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "A question of this module has no correct answer defined",
			})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to evaluate answers!", nil)
	}

	score := evaluation.Percentage()
	answersJSON, _ := json.Marshal(reqData.Answers)

	if !evaluation.Passed() {
		attempt := courseModels.QuizAttempt{
			UserID:      userID,
			ModuleID:    module.ID,
			Score:       score,
			Passed:      false,
			Answers:     answersJSON,
			CompletedAt: time.Now(),
		}

		// Failed attempts only touch the history table, never the user row
		if err := database.Database.Db.Create(&attempt).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attempt!", nil)
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":        "failed",
			"message":       "Score below passing threshold. Try again!",
			"score":         score,
			"passing_score": quiz.PassThreshold,
			"results":       evaluation.Results,
		})
	}

	// Fast path; the unique index remains the real guard
	var existing courseModels.CompletedModule
	if err := database.Database.Db.Where("user_id = ? AND module_id = ?", userID, module.ID).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Module already completed",
		})
	}

	var progress quiz.Progress
	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		completion := courseModels.CompletedModule{
			UserID:      userID,
			ModuleID:    module.ID,
			CompletedAt: time.Now(),
		}
		if err := tx.Create(&completion).Error; err != nil {
			return err
		}

		for _, result := range evaluation.Results {
			answer := courseModels.UserModuleAnswer{
				UserID:           userID,
				ModuleQuestionID: result.QuestionID,
				SubmittedAnswer:  answers[result.QuestionID],
				IsCorrect:        result.IsCorrect,
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		}

		attempt := courseModels.QuizAttempt{
			UserID:      userID,
			ModuleID:    module.ID,
			Score:       score,
			Passed:      true,
			Answers:     answersJSON,
			CompletedAt: time.Now(),
		}
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		progress = quiz.ApplyXP(user.XP, user.Level, module.XP)
		return tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"xp":    progress.NewXP,
			"level": progress.NewLevel,
		}).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			// Lost the race against a concurrent submission
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "Module already completed",
			})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete module!", nil)
	}

	if progress.LeveledUp {
		utils.SendLevelUpEmail(user.Email, user.Name, progress.NewLevel)
		utils.NotifyLevelUp(user.Name, progress.NewLevel, progress.NewXP)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":        "success",
		"message":       "Module completed successfully!",
		"score":         score,
		"xp_earned":     module.XP,
		"total_xp":      progress.NewXP,
		"current_level": progress.NewLevel,
		"leveled_up":    progress.LeveledUp,
		"results":       evaluation.Results,
	})
}

// GetUserAnswers returns the caller's recorded answers for a module together
// with the correct answers and explanations. Only available once the module
// has been completed.
func GetUserAnswers(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID, err := c.ParamsInt("id")
	if err != nil || moduleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Preload("Questions.Options").Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var completion courseModels.CompletedModule
	if err := database.Database.Db.Where("user_id = ? AND module_id = ?", userID, module.ID).First(&completion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete the module to review your answers!", nil)
	}

	questionIDs := make([]uint, len(module.Questions))
	for i, question := range module.Questions {
		questionIDs[i] = question.ID
	}

	var userAnswers []courseModels.UserModuleAnswer
	database.Database.Db.Where("user_id = ? AND module_question_id IN ?", userID, questionIDs).Find(&userAnswers)

	answerByQuestion := make(map[uint]courseModels.UserModuleAnswer, len(userAnswers))
	for _, answer := range userAnswers {
		answerByQuestion[answer.ModuleQuestionID] = answer
	}

	type answerReview struct {
		QuestionID      uint   `json:"question_id"`
		QuestionText    string `json:"question_text"`
		SubmittedAnswer string `json:"submitted_answer"`
		IsCorrect       bool   `json:"is_correct"`
		CorrectAnswer   string `json:"correct_answer"`
		Explanation     string `json:"explanation,omitempty"`
		Points          int    `json:"points"`
	}

	reviews := make([]answerReview, 0, len(module.Questions))
	for i := range module.Questions {
		question := &module.Questions[i]
		review := answerReview{
			QuestionID:   question.ID,
			QuestionText: question.QuestionText,
			Explanation:  question.Explanation,
			Points:       question.Points,
		}
		if answer, ok := answerByQuestion[question.ID]; ok {
			review.SubmittedAnswer = answer.SubmittedAnswer
			review.IsCorrect = answer.IsCorrect
		}
		for _, option := range question.Options {
			if option.IsCorrect {
				review.CorrectAnswer = option.OptionText
				break
			}
		}
		reviews = append(reviews, review)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":       "success",
		"completed_at": completion.CompletedAt,
		"answers":      reviews,
	})
}
