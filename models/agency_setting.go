package models

import "time"

// AgencySetting is the singleton site-wide contact/branding record rendered
// in the public footer and contact blocks.
type AgencySetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	Phone     string    `gorm:"size:50" json:"phone"`
	WhatsApp  string    `gorm:"column:whatsapp;size:50" json:"whatsapp"`
	Email     string    `gorm:"size:150" json:"email"`
	Instagram string    `gorm:"size:255" json:"instagram"`
	Logo      string    `gorm:"size:255" json:"logo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
