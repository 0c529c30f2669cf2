package models

import (
	"time"

	"gorm.io/gorm"
)

// FlightOffer is a premium-cabin fare published on the offers page. Admins
// usually paste the consolidator line as-is into OfferText; the parsed
// origin/destination/price fields are filled from it when left blank (see
// utils.ParseOfferLine).
type FlightOffer struct {
	gorm.Model

	Origin      string `json:"origin" gorm:"size:120"`
	Destination string `json:"destination" gorm:"size:120"`
	Airline     string `json:"airline" gorm:"size:120"`
	Cabin       string `json:"cabin" gorm:"size:40"`

	PriceCents int64  `json:"priceCents" gorm:"column:price_cents"`
	OfferText  string `json:"offerText" gorm:"column:offer_text;type:text"`

	DepartDate *time.Time `json:"departDate" gorm:"column:depart_date"`
	ReturnDate *time.Time `json:"returnDate" gorm:"column:return_date"`

	Published bool `json:"published" gorm:"default:false"`
}
