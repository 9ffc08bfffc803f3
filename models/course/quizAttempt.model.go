package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizAttempt is an append-only history of quiz submissions, failed ones
// included. It is never consulted when deciding whether a module may be
// completed; CompletedModule alone carries that meaning.
type QuizAttempt struct {
	gorm.Model
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	ModuleID    uint           `json:"module_id" gorm:"index;not null"`
	Score       int            `json:"score"` // Percentage 0-100
	Passed      bool           `json:"passed" gorm:"default:false"`
	Answers     datatypes.JSON `json:"answers"` // Snapshot of submitted answers
	CompletedAt time.Time      `json:"completed_at"`
}
