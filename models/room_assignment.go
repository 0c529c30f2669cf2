package models

import "time"

// RoomAssignment places a quantity of one BedType inside a Space ("bed" in
// UI labels). Adding the same bed type twice on purpose creates two rows;
// line items are kept visually distinct, never merged. No ordering among
// assignments within a space — they render in insertion order.
type RoomAssignment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	SpaceID   uint `gorm:"index;not null" json:"spaceId"`
	BedTypeID uint `gorm:"not null" json:"bedTypeId"`
	Quantity  int  `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `json:"createdAt"`

	BedType BedType `gorm:"foreignKey:BedTypeID" json:"bedType"`
}
