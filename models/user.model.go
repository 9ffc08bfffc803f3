package models

import (
	"gorm.io/gorm"
)

// Role values for User.Role
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a platform user with XP based progression.
// Level is stored but always derived as xp/1000 + 1; it never decreases
// through normal play.
type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"default:''"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	Avatar   string `json:"avatar" gorm:"default:''"`
	Level    int    `json:"level" gorm:"default:1"`
	XP       int    `json:"xp" gorm:"default:0"`
	Role     string `json:"role" gorm:"default:'user'"` // user, admin
}
