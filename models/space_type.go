package models

import (
	"time"

	"gorm.io/gorm"
)

// SpaceType is a catalog entry naming a kind of space (Quarto, Sala de
// Estar...). Icon is the frontend icon slug; when empty the projector falls
// back to a name-based default.
type SpaceType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:120" json:"name"`
	Icon string `gorm:"size:60" json:"icon"`

	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
