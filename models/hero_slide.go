package models

import "time"

// HeroSlide is one slide of the homepage carousel. Ordered the same way
// spaces are: display_order reassigned densely on reorder, only relative
// order matters.
type HeroSlide struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title    string `gorm:"size:255" json:"title"`
	Subtitle string `gorm:"size:255" json:"subtitle"`
	ImageURL string `gorm:"column:image_url;size:255" json:"imageUrl"`
	LinkURL  string `gorm:"column:link_url;size:255" json:"linkUrl"`

	DisplayOrder int  `gorm:"column:display_order;not null;default:0;index" json:"displayOrder"`
	Published    bool `gorm:"default:true" json:"published"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
