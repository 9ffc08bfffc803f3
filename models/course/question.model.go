package course

import "gorm.io/gorm"

// Question type values
const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionTrueFalse      = "true_false"
	QuestionOpenEnded      = "open_ended"
)

// ModuleQuestion represents a quiz question belonging to a module
type ModuleQuestion struct {
	gorm.Model
	ModuleID     uint                   `json:"module_id" gorm:"index;not null"`
	QuestionText string                 `json:"question_text" gorm:"type:text"`
	QuestionType string                 `json:"question_type" gorm:"default:'multiple_choice'"` // multiple_choice, true_false, open_ended
	Points       int                    `json:"points" gorm:"default:1"`
	OrderIndex   int                    `json:"order_index" gorm:"default:0"`
	Explanation  string                 `json:"explanation" gorm:"type:text"`
	Options      []ModuleQuestionOption `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// ModuleQuestionOption represents one answer option of a question.
// Exactly one option per question is expected to carry IsCorrect.
type ModuleQuestionOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
}
