package models

import "gorm.io/gorm"

// Language represents a programming language that courses can be tagged with
type Language struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Image       string `json:"image"`
}
