package models

import (
	"time"

	"gorm.io/gorm"
)

type Admin struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FullName  string         `gorm:"size:255" json:"full_name"`
	Email     string         `gorm:"uniqueIndex;size:150" json:"email"`
	Password  string         `gorm:"size:255" json:"-"` // store hashed password, never return in JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}
