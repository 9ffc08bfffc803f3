package moduleValidator_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	moduleController "codequest/controllers/module"
	moduleValidator "codequest/validators/module"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validatorApp mounts one validator in front of a handler that echoes the
// Locals key it is expected to set
func validatorApp(handler fiber.Handler, localsKey string) *fiber.App {
	app := fiber.New()
	app.Post("/validate", handler, func(c *fiber.Ctx) error {
		if c.Locals(localsKey) == nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func post(t *testing.T, app *fiber.App, payload interface{}) int {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func validQuestion() moduleController.QuestionPayload {
	return moduleController.QuestionPayload{
		QuestionText: "What does := do?",
		QuestionType: "multiple_choice",
		Points:       1,
		OrderIndex:   intPtr(0),
		Options: []moduleController.OptionPayload{
			{OptionText: "Declares and assigns", IsCorrect: boolPtr(true)},
			{OptionText: "Compares", IsCorrect: boolPtr(false)},
		},
	}
}

func TestQuestionValidatorAccepts(t *testing.T) {
	app := validatorApp(moduleValidator.Question(), "validatedQuestion")
	assert.Equal(t, http.StatusOK, post(t, app, validQuestion()))
}

func TestQuestionValidatorRejectsSingleOption(t *testing.T) {
	app := validatorApp(moduleValidator.Question(), "validatedQuestion")

	payload := validQuestion()
	payload.Options = payload.Options[:1]
	assert.Equal(t, http.StatusUnprocessableEntity, post(t, app, payload))
}

func TestQuestionValidatorRejectsMultipleCorrect(t *testing.T) {
	app := validatorApp(moduleValidator.Question(), "validatedQuestion")

	payload := validQuestion()
	payload.Options[1].IsCorrect = boolPtr(true)
	assert.Equal(t, http.StatusUnprocessableEntity, post(t, app, payload))
}

func TestQuestionValidatorRejectsNoCorrect(t *testing.T) {
	app := validatorApp(moduleValidator.Question(), "validatedQuestion")

	payload := validQuestion()
	payload.Options[0].IsCorrect = boolPtr(false)
	assert.Equal(t, http.StatusUnprocessableEntity, post(t, app, payload))
}

func TestQuestionValidatorRejectsUnknownType(t *testing.T) {
	app := validatorApp(moduleValidator.Question(), "validatedQuestion")

	payload := validQuestion()
	payload.QuestionType = "essay"
	assert.Equal(t, http.StatusUnprocessableEntity, post(t, app, payload))
}

func TestCompletionValidatorRequiresAnswers(t *testing.T) {
	app := validatorApp(moduleValidator.Completion(), "validatedCompletion")

	assert.Equal(t, http.StatusUnprocessableEntity, post(t, app, fiber.Map{}))
	assert.Equal(t, http.StatusUnprocessableEntity, post(t, app, fiber.Map{
		"answers": []fiber.Map{{"question_id": 0, "answer": "x"}},
	}))
	assert.Equal(t, http.StatusOK, post(t, app, fiber.Map{
		"answers": []fiber.Map{{"question_id": 1, "answer": "x"}},
	}))
}

func TestAnswerValidatorRequiresAnswer(t *testing.T) {
	app := validatorApp(moduleValidator.Answer(), "validatedAnswer")

	assert.Equal(t, http.StatusUnprocessableEntity, post(t, app, fiber.Map{"answer": ""}))
	assert.Equal(t, http.StatusOK, post(t, app, fiber.Map{"answer": "42"}))
}
