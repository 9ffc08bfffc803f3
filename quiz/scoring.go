// Package quiz holds the scoring and progression rules for module quizzes.
// Everything here is pure; persistence stays in the controllers.
package quiz

import (
	"errors"
	"math"

	courseModels "codequest/models/course"
)

// PassThreshold is the minimum score percentage required to complete a module.
const PassThreshold = 70

var (
	// ErrIncompleteSubmission is returned when a question of the module has no
	// submitted answer. There is no partial grading.
	ErrIncompleteSubmission = errors.New("every question must be answered")

	// ErrNoCorrectOption is returned when a question has no option flagged as
	// correct. This is a content defect, not a user error.
	ErrNoCorrectOption = errors.New("question has no correct option defined")
)

// QuestionResult is the per-question verdict of an evaluation
type QuestionResult struct {
	QuestionID    uint   `json:"question_id"`
	IsCorrect     bool   `json:"is_correct"`
	PointsAwarded int    `json:"points_awarded"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

// Evaluation aggregates the outcome of grading a full module submission
type Evaluation struct {
	Results             []QuestionResult `json:"results"`
	TotalPointsEarned   int              `json:"total_points_earned"`
	TotalPointsPossible int              `json:"total_points_possible"`
}

// Percentage returns the score rounded to the nearest integer. A module
// without points can never reach the pass threshold.
func (e *Evaluation) Percentage() int {
	if e.TotalPointsPossible == 0 {
		return 0
	}
	return int(math.Round(100 * float64(e.TotalPointsEarned) / float64(e.TotalPointsPossible)))
}

// Passed reports whether the evaluation meets the pass threshold
func (e *Evaluation) Passed() bool {
	return e.Percentage() >= PassThreshold
}

// GradeAnswer grades a single question. Correctness is exact string equality
// with the correct option's text, case-sensitive and untrimmed.
func GradeAnswer(question *courseModels.ModuleQuestion, answer string) (QuestionResult, error) {
	correct := correctOption(question)
	if correct == nil {
		return QuestionResult{}, ErrNoCorrectOption
	}

	result := QuestionResult{
		QuestionID:    question.ID,
		CorrectAnswer: correct.OptionText,
		Explanation:   question.Explanation,
	}
	if answer == correct.OptionText {
		result.IsCorrect = true
		result.PointsAwarded = question.Points
	}
	return result, nil
}

// Evaluate grades a full module submission. Answers are keyed by question ID;
// an entry must exist, non-empty, for every question of the module. Points are
// all-or-nothing per question.
func Evaluate(questions []courseModels.ModuleQuestion, answers map[uint]string) (*Evaluation, error) {
	evaluation := &Evaluation{Results: make([]QuestionResult, 0, len(questions))}

	for i := range questions {
		question := &questions[i]

		answer, ok := answers[question.ID]
		if !ok || answer == "" {
			return nil, ErrIncompleteSubmission
		}

		result, err := GradeAnswer(question, answer)
		if err != nil {
			return nil, err
		}

		evaluation.Results = append(evaluation.Results, result)
		evaluation.TotalPointsEarned += result.PointsAwarded
		evaluation.TotalPointsPossible += question.Points
	}

	return evaluation, nil
}

func correctOption(question *courseModels.ModuleQuestion) *courseModels.ModuleQuestionOption {
	for i := range question.Options {
		if question.Options[i].IsCorrect {
			return &question.Options[i]
		}
	}
	return nil
}
