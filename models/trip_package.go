package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TripPackage struct {
	gorm.Model

	Title       string `json:"title" gorm:"size:255"`
	Destination string `json:"destination" gorm:"size:255"`
	Description string `json:"description" gorm:"type:text"`

	Days   int `json:"days"`
	Nights int `json:"nights"`

	PriceCents int64          `json:"priceCents" gorm:"column:price_cents"`
	Highlights datatypes.JSON `json:"highlights"`
	CoverURL   string         `json:"coverUrl" gorm:"column:cover_url;size:255"`
	Published  bool           `json:"published" gorm:"default:false"`
}
