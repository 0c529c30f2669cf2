package controllers

import (
	"fmt"
	"net/http"
	"time"

	"xplore-backend/models"
	"xplore-backend/services"
	"xplore-backend/utils"

	"github.com/gin-gonic/gin"
)

type QuoteController struct {
	Leads *services.LeadService
}

func NewQuoteController(leads *services.LeadService) *QuoteController {
	return &QuoteController{Leads: leads}
}

// POST /api/quotes — public quotation form. The lead is persisted before
// the CRM forward, so a CRM outage never loses a request.
func (ctrl *QuoteController) Create(c *gin.Context) {
	var lead models.QuoteRequest
	if err := c.ShouldBindJSON(&lead); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	created, err := ctrl.Leads.Create(lead)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// GET /api/admin/quotes
func (ctrl *QuoteController) List(c *gin.Context) {
	leads, err := ctrl.Leads.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, leads)
}

// POST /api/admin/quotes/:id/resend
func (ctrl *QuoteController) Resend(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	lead, err := ctrl.Leads.Resend(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, lead)
}

// GET /api/admin/quotes/export — xlsx download for the sales team
func (ctrl *QuoteController) Export(c *gin.Context) {
	f, err := ctrl.Leads.ExportXLSX()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("orcamentos-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		// headers are already out; just log via gin's error list
		_ = c.Error(err)
	}
}
