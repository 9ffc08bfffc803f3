package course

import (
	"time"

	"gorm.io/gorm"
)

// CompletedModule records the one-time completion of a module by a user.
// The composite unique index is the authoritative guard against duplicate
// completions, including concurrent submissions.
type CompletedModule struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_module"`
	ModuleID    uint      `json:"module_id" gorm:"not null;uniqueIndex:idx_user_module"`
	CompletedAt time.Time `json:"completed_at"`
}

// UserModuleAnswer records the answer a user submitted for a question.
// One row per (user, question); resubmissions overwrite, they do not stack.
type UserModuleAnswer struct {
	gorm.Model
	UserID           uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_user_question"`
	ModuleQuestionID uint   `json:"module_question_id" gorm:"not null;uniqueIndex:idx_user_question"`
	SubmittedAnswer  string `json:"submitted_answer" gorm:"type:text"`
	IsCorrect        bool   `json:"is_correct" gorm:"default:false"`
}
