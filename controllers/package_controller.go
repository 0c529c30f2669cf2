package controllers

import (
	"fmt"
	"net/http"

	"xplore-backend/config"
	"xplore-backend/models"

	"github.com/gin-gonic/gin"
)

// GET /api/packages (public) and /api/admin/packages share this handler;
// only the admin group sees unpublished rows.
func GetTripPackages(c *gin.Context) {
	var packages []models.TripPackage
	q := config.DB.Order("created_at DESC")
	if c.GetUint("adminID") == 0 {
		q = q.Where("published = ?", true)
	}
	q.Find(&packages)
	c.JSON(http.StatusOK, packages)
}

func CreateTripPackage(c *gin.Context) {
	var pkg models.TripPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	if pkg.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	if err := config.DB.Create(&pkg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func UpdateTripPackage(c *gin.Context) {
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

	if err := config.DB.Model(&models.TripPackage{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Package updated"})
}

func DeleteTripPackage(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.TripPackage{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete package."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Package with ID %s not found.", id)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Package deleted"})
}
