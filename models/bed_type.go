package models

import (
	"time"

	"gorm.io/gorm"
)

// BedType is a catalog entry shared by every property (Casal, Queen,
// Solteiro...). SleepsCount is how many guests the bed type accommodates.
type BedType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:120" json:"name"`
	SleepsCount int    `gorm:"column:sleeps_count;not null" json:"sleepsCount"`

	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
