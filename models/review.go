package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model

	AuthorName string `json:"authorName" gorm:"column:author_name;size:120"`
	City       string `json:"city" gorm:"size:120"`
	Rating     int    `json:"rating"`
	Body       string `json:"body" gorm:"type:text"`
	Published  bool   `json:"published" gorm:"default:false"`
}
