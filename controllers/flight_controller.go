package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"xplore-backend/config"
	"xplore-backend/models"
	"xplore-backend/utils"

	"github.com/gin-gonic/gin"
)

func GetFlightOffers(c *gin.Context) {
	var offers []models.FlightOffer
	q := config.DB.Order("created_at DESC")
	if c.GetUint("adminID") == 0 {
		q = q.Where("published = ?", true)
	}
	q.Find(&offers)
	c.JSON(http.StatusOK, offers)
}

// CreateFlightOffer fills origin/destination/price from the pasted offer
// line when the admin left those fields blank.
func CreateFlightOffer(c *gin.Context) {
	var offer models.FlightOffer
	if err := c.ShouldBindJSON(&offer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	if strings.TrimSpace(offer.OfferText) != "" {
		if parsed, ok := utils.ParseOfferLine(offer.OfferText); ok {
			if offer.Origin == "" {
				offer.Origin = parsed.Origin
			}
			if offer.Destination == "" {
				offer.Destination = parsed.Destination
			}
			if offer.PriceCents == 0 {
				offer.PriceCents = parsed.PriceCents
			}
		}
	}
	if offer.Origin == "" || offer.Destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin and destination are required (type them or paste a parsable offer line)"})
		return
	}

	if err := config.DB.Create(&offer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, offer)
}

func UpdateFlightOffer(c *gin.Context) {
	id := c.Param("id")
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	if err := config.DB.Model(&models.FlightOffer{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Offer updated"})
}

func DeleteFlightOffer(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.FlightOffer{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete offer."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Offer with ID %s not found.", id)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Offer deleted"})
}
