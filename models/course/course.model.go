package course

import (
	"codequest/models"

	"gorm.io/gorm"
)

// Course status values
const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Course represents a learning course made of ordered modules
type Course struct {
	gorm.Model
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	DifficultyLevel string           `json:"difficulty_level" gorm:"default:'easy'"` // easy, medium, hard
	Status          string           `json:"status" gorm:"default:'draft'"`          // draft, active, inactive
	Category        string           `json:"category"`                               // frontend, backend, database, mobile
	LanguageID      *uint            `json:"language_id" gorm:"index"`
	Language        *models.Language `json:"language,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	Modules         []Module         `json:"modules,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
