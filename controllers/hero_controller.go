package controllers

import (
	"database/sql"
	"fmt"
	"net/http"

	"xplore-backend/config"
	"xplore-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetHeroSlides(c *gin.Context) {
	var slides []models.HeroSlide
	q := config.DB.Order("display_order ASC")
	if c.GetUint("adminID") == 0 {
		q = q.Where("published = ?", true)
	}
	q.Find(&slides)
	c.JSON(http.StatusOK, slides)
}

// CreateHeroSlide appends at the end of the carousel, same next-order rule
// the spaces use.
func CreateHeroSlide(c *gin.Context) {
	var slide models.HeroSlide
	if err := c.ShouldBindJSON(&slide); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	if slide.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageUrl is required"})
		return
	}

	var maxOrder sql.NullInt64
	config.DB.Model(&models.HeroSlide{}).Select("MAX(display_order)").Scan(&maxOrder)
	slide.DisplayOrder = 0
	if maxOrder.Valid {
		slide.DisplayOrder = int(maxOrder.Int64) + 1
	}

	if err := config.DB.Create(&slide).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, slide)
}

type reorderSlidesPayload struct {
	OrderedSlideIDs []uint `json:"orderedSlideIds" binding:"required"`
}

// ReorderHeroSlides applies the same exact-id-set contract as space
// reordering: the submitted list must name every slide exactly once.
func ReorderHeroSlides(c *gin.Context) {
	var payload reorderSlidesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	var current []models.HeroSlide
	if err := config.DB.Find(&current).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(payload.OrderedSlideIDs) != len(current) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("expected %d slide ids, got %d", len(current), len(payload.OrderedSlideIDs))})
		return
	}
	existing := make(map[uint]bool, len(current))
	for _, s := range current {
		existing[s.ID] = true
	}
	seen := make(map[uint]bool, len(payload.OrderedSlideIDs))
	for _, id := range payload.OrderedSlideIDs {
		if !existing[id] || seen[id] {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("slide id %d is unknown or duplicated", id)})
			return
		}
		seen[id] = true
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for index, id := range payload.OrderedSlideIDs {
			if err := tx.Model(&models.HeroSlide{}).Where("id = ?", id).
				Update("display_order", index).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var slides []models.HeroSlide
	config.DB.Order("display_order ASC").Find(&slides)
	c.JSON(http.StatusOK, slides)
}

func UpdateHeroSlide(c *gin.Context) {
	id := c.Param("id")
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")

	if err := config.DB.Model(&models.HeroSlide{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Slide updated"})
}

func DeleteHeroSlide(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.HeroSlide{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete slide."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Slide with ID %s not found.", id)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Slide deleted"})
}
