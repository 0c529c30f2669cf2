package controllers

import (
	"net/http"

	"xplore-backend/models"
	"xplore-backend/services"

	"github.com/gin-gonic/gin"
)

type PropertyController struct {
	Properties *services.PropertyService
}

func NewPropertyController(properties *services.PropertyService) *PropertyController {
	return &PropertyController{Properties: properties}
}

// GET /api/properties — published listings for the public site
func (ctrl *PropertyController) ListPublic(c *gin.Context) {
	properties, err := ctrl.Properties.List(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// GET /api/properties/:slug — the public aggregate read; the rollup in
// the body is computed server-side by the shared projector.
func (ctrl *PropertyController) GetDetail(c *gin.Context) {
	detail, err := ctrl.Properties.GetDetailBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GET /api/admin/properties
func (ctrl *PropertyController) ListAdmin(c *gin.Context) {
	properties, err := ctrl.Properties.List(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// POST /api/admin/properties
func (ctrl *PropertyController) Create(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	created, err := ctrl.Properties.Create(property)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PATCH /api/admin/properties/:id
func (ctrl *PropertyController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	if err := ctrl.Properties.Update(id, fields); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Property updated"})
}

// DELETE /api/admin/properties/:id
func (ctrl *PropertyController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Properties.Delete(id); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Property deleted"})
}
