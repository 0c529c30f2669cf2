package models

import "time"

// Space is one functional area inside a Property (a bedroom, living room,
// balcony...). Rows hard-delete: deleting a space must leave no orphan
// RoomAssignment behind, so there is no soft-delete column here.
//
// DisplayOrder only encodes relative order within the property; values are
// reassigned densely on every reorder but readers must not rely on
// contiguity. CustomName is nil when the admin never named the space — the
// display label is then derived from the live order (see services.LabelFor)
// and never stored.
type Space struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	PropertyID  uint    `gorm:"index;not null" json:"propertyId"`
	SpaceTypeID uint    `gorm:"not null" json:"spaceTypeId"`
	CustomName  *string `gorm:"size:120" json:"customName"`

	DisplayOrder int    `gorm:"column:display_order;not null;default:0;index" json:"displayOrder"`
	PhotoURL     string `gorm:"column:photo_url;size:255" json:"photoUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	SpaceType SpaceType `gorm:"foreignKey:SpaceTypeID" json:"-"`
}
