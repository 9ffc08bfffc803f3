package course

import "gorm.io/gorm"

// Module represents a course subunit with content, an XP reward and an
// optional quiz made of questions
type Module struct {
	gorm.Model
	CourseID    uint             `json:"course_id" gorm:"index;not null"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Content     string           `json:"content" gorm:"type:text"`
	OrderIndex  int              `json:"order_index" gorm:"default:0"` // Module order in course
	Duration    string           `json:"duration"`                     // Display label, e.g. "15 min"
	XP          int              `json:"xp" gorm:"default:0"`          // Reward on completion
	Questions   []ModuleQuestion `json:"questions,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
