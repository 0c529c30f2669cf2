package controllers

import (
	"errors"
	"net/http"

	"xplore-backend/config"
	"xplore-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type agencySettingsPayload struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	WhatsApp  string `json:"whatsapp"`
	Email     string `json:"email"`
	Instagram string `json:"instagram"`
	Logo      string `json:"logo"`
}

func GetAgencySettings(c *gin.Context) {
	var agency models.AgencySetting
	if err := config.DB.First(&agency).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"agency": models.AgencySetting{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"agency": agency})
}

func UpdateAgencySettings(c *gin.Context) {
	var payload agencySettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var agency models.AgencySetting
	err := config.DB.First(&agency).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	agency.Name = payload.Name
	agency.Address = payload.Address
	agency.Phone = payload.Phone
	agency.WhatsApp = payload.WhatsApp
	agency.Email = payload.Email
	agency.Instagram = payload.Instagram
	agency.Logo = payload.Logo

	if err := config.DB.Save(&agency).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"agency": agency})
}
