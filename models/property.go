package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Property is a lodging listing shown on the public site. The spaces that
// belong to it carry the sleeping-arrangement detail; the property row only
// holds the marketing copy and the address parts used to build the display
// address.
type Property struct {
	gorm.Model

	Slug        string `json:"slug" gorm:"uniqueIndex;size:150"`
	Title       string `json:"title" gorm:"size:255"`
	Summary     string `json:"summary" gorm:"size:500"`
	Description string `json:"description" gorm:"type:text"`

	Street   string `json:"street" gorm:"size:255"`
	Number   string `json:"number" gorm:"size:20"`
	District string `json:"district" gorm:"size:120"`
	City     string `json:"city" gorm:"size:120"`
	State    string `json:"state" gorm:"size:2"`

	MaxGuests      int   `json:"maxGuests" gorm:"column:max_guests"`
	AreaM2         int   `json:"areaM2" gorm:"column:area_m2"`
	BasePriceCents int64 `json:"basePriceCents" gorm:"column:base_price_cents"`

	Photos    datatypes.JSON `json:"photos"`
	Published bool           `json:"published" gorm:"default:false"`
}
