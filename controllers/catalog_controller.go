package controllers

import (
	"net/http"

	"xplore-backend/models"
	"xplore-backend/services"
	"xplore-backend/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

func (ctrl *CatalogController) ListBedTypes(c *gin.Context) {
	types, err := ctrl.Catalog.ListBedTypes()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (ctrl *CatalogController) CreateBedType(c *gin.Context) {
	var bt models.BedType
	if err := c.ShouldBindJSON(&bt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	created, err := ctrl.Catalog.CreateBedType(bt)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

type bedTypePayload struct {
	Name        string `json:"name"`
	SleepsCount int    `json:"sleepsCount"`
}

func (ctrl *CatalogController) UpdateBedType(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload bedTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	updated, err := ctrl.Catalog.UpdateBedType(id, payload.Name, payload.SleepsCount)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// DeleteBedType blocks with 409 while any bed assignment still references
// the entry.
func (ctrl *CatalogController) DeleteBedType(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Catalog.DeleteBedType(id); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Bed type deleted"})
}

func (ctrl *CatalogController) ListSpaceTypes(c *gin.Context) {
	types, err := ctrl.Catalog.ListSpaceTypes()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (ctrl *CatalogController) CreateSpaceType(c *gin.Context) {
	var st models.SpaceType
	if err := c.ShouldBindJSON(&st); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	created, err := ctrl.Catalog.CreateSpaceType(st)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

type spaceTypePayload struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (ctrl *CatalogController) UpdateSpaceType(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload spaceTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	updated, err := ctrl.Catalog.UpdateSpaceType(id, payload.Name, payload.Icon)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (ctrl *CatalogController) DeleteSpaceType(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Catalog.DeleteSpaceType(id); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Space type deleted"})
}
