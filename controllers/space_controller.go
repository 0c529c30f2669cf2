package controllers

import (
	"log"
	"net/http"
	"strconv"

	"xplore-backend/services"

	"github.com/gin-gonic/gin"
)

// SpaceController exposes the composite space/bed aggregate to the admin
// editor: space CRUD and reordering, bed attach/remove, per-space photo.
type SpaceController struct {
	Spaces     *services.SpaceService
	Properties *services.PropertyService
}

func NewSpaceController(spaces *services.SpaceService, properties *services.PropertyService) *SpaceController {
	return &SpaceController{Spaces: spaces, Properties: properties}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id: " + raw})
		return 0, false
	}
	return uint(id), true
}

// GET /api/admin/properties/:id/spaces
func (ctrl *SpaceController) ListSpaces(c *gin.Context) {
	propertyID, ok := paramID(c, "id")
	if !ok {
		return
	}

	detail, err := ctrl.Properties.EditorView(propertyID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"spaces": detail.Spaces,
		"rollup": detail.Rollup,
	})
}

type createSpacePayload struct {
	SpaceTypeID uint `json:"spaceTypeId" binding:"required"`
}

// POST /api/admin/properties/:id/spaces
func (ctrl *SpaceController) CreateSpace(c *gin.Context) {
	propertyID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload createSpacePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	space, err := ctrl.Spaces.CreateSpace(propertyID, payload.SpaceTypeID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, space)
}

type reorderPayload struct {
	OrderedSpaceIDs []uint `json:"orderedSpaceIds" binding:"required"`
}

// PUT /api/admin/properties/:id/spaces/order
//
// Accepts the full new ordered id list; the service rejects any set
// mismatch, so a partial or stale list never half-applies.
func (ctrl *SpaceController) ReorderSpaces(c *gin.Context) {
	propertyID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload reorderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	if err := ctrl.Spaces.ReorderSpaces(propertyID, payload.OrderedSpaceIDs); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	// return the canonical list so the editor can reconcile immediately
	detail, err := ctrl.Properties.EditorView(propertyID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"spaces": detail.Spaces, "rollup": detail.Rollup})
}

type renamePayload struct {
	CustomName *string `json:"customName"`
}

// PATCH /api/admin/spaces/:id
func (ctrl *SpaceController) RenameSpace(c *gin.Context) {
	spaceID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload renamePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	if err := ctrl.Spaces.RenameSpace(spaceID, payload.CustomName); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// DELETE /api/admin/spaces/:id
func (ctrl *SpaceController) DeleteSpace(c *gin.Context) {
	spaceID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Spaces.DeleteSpace(spaceID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	log.Printf("space %d deleted", spaceID)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Space deleted"})
}

// GET /api/admin/spaces/:id/beds
func (ctrl *SpaceController) ListBeds(c *gin.Context) {
	spaceID, ok := paramID(c, "id")
	if !ok {
		return
	}

	beds, err := ctrl.Spaces.ListBedsForSpace(spaceID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, beds)
}

type addBedPayload struct {
	BedTypeID uint `json:"bedTypeId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// POST /api/admin/spaces/:id/beds
func (ctrl *SpaceController) AddBed(c *gin.Context) {
	spaceID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload addBedPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	assignment, err := ctrl.Spaces.AddBed(spaceID, payload.BedTypeID, payload.Quantity)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// DELETE /api/admin/beds/:id
func (ctrl *SpaceController) RemoveBed(c *gin.Context) {
	bedID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Spaces.RemoveBed(bedID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Bed removed"})
}

type photoPayload struct {
	Image string `json:"image" binding:"required"`
}

// PUT /api/admin/spaces/:id/photo
func (ctrl *SpaceController) SetPhoto(c *gin.Context) {
	spaceID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload photoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	url, err := ctrl.Spaces.SetSpacePhoto(spaceID, payload.Image)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DELETE /api/admin/spaces/:id/photo
func (ctrl *SpaceController) ClearPhoto(c *gin.Context) {
	spaceID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Spaces.ClearSpacePhoto(spaceID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
