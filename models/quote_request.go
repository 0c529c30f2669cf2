package models

import "time"

// QuoteRequest is a lead captured by the public quotation form. The row is
// persisted first; forwarding to the CRM is best-effort afterwards, so
// CRMStatus stays "pending" when the forward fails and an operator can
// re-send from the back-office.
type QuoteRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName    string `gorm:"column:full_name;size:255" json:"fullName"`
	Email       string `gorm:"size:255" json:"email"`
	Phone       string `gorm:"size:50" json:"phone"`
	Destination string `gorm:"size:255" json:"destination"`
	TravelMonth string `gorm:"column:travel_month;size:40" json:"travelMonth"`
	PartySize   int    `gorm:"column:party_size" json:"partySize"`
	Message     string `gorm:"type:text" json:"message"`

	CRMStatus   string     `gorm:"column:crm_status;size:20;default:pending" json:"crmStatus"`
	ForwardedAt *time.Time `gorm:"column:forwarded_at" json:"forwardedAt"`

	CreatedAt time.Time `json:"createdAt"`
}
