package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"xplore-backend/models"

	"github.com/go-resty/resty/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// LeadService owns the quotation funnel: persist the lead, then forward it
// to the external CRM best-effort. The CRM never gates the public form — a
// forward failure leaves the row in crm_status=pending for manual re-send.
type LeadService struct {
	DB          *gorm.DB
	CRM         *resty.Client
	CRMEndpoint string
}

func NewLeadService(db *gorm.DB, crmEndpoint string) *LeadService {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &LeadService{DB: db, CRM: client, CRMEndpoint: strings.TrimSpace(crmEndpoint)}
}

func (s *LeadService) Create(lead models.QuoteRequest) (models.QuoteRequest, error) {
	lead.FullName = strings.TrimSpace(lead.FullName)
	lead.Email = strings.TrimSpace(lead.Email)
	lead.Phone = strings.TrimSpace(lead.Phone)

	if lead.FullName == "" {
		return lead, fmt.Errorf("fullName is required: %w", ErrValidation)
	}
	if lead.Email == "" && lead.Phone == "" {
		return lead, fmt.Errorf("email or phone is required: %w", ErrValidation)
	}
	if lead.PartySize < 0 {
		return lead, fmt.Errorf("partySize cannot be negative: %w", ErrValidation)
	}

	lead.CRMStatus = "pending"
	if err := s.DB.Create(&lead).Error; err != nil {
		return lead, err
	}

	s.forward(&lead)
	return lead, nil
}

// forward pushes the lead to the CRM and records the outcome on the row.
// Failures are logged only.
func (s *LeadService) forward(lead *models.QuoteRequest) {
	if s.CRMEndpoint == "" {
		return
	}

	resp, err := s.CRM.R().
		SetBody(map[string]interface{}{
			"name":         lead.FullName,
			"email":        lead.Email,
			"phone":        lead.Phone,
			"destination":  lead.Destination,
			"travel_month": lead.TravelMonth,
			"party_size":   lead.PartySize,
			"message":      lead.Message,
			"source":       "site",
		}).
		Post(s.CRMEndpoint)
	if err != nil {
		log.Printf("warning: CRM forward failed for lead %d: %v", lead.ID, err)
		return
	}
	if resp.IsError() {
		log.Printf("warning: CRM forward for lead %d returned %d", lead.ID, resp.StatusCode())
		return
	}

	now := time.Now()
	lead.CRMStatus = "sent"
	lead.ForwardedAt = &now
	if err := s.DB.Model(lead).Updates(map[string]interface{}{
		"crm_status":   "sent",
		"forwarded_at": now,
	}).Error; err != nil {
		log.Printf("warning: failed to record CRM forward for lead %d: %v", lead.ID, err)
	}
}

// Resend retries the CRM forward for one lead from the back-office.
func (s *LeadService) Resend(id uint) (models.QuoteRequest, error) {
	var lead models.QuoteRequest
	if err := s.DB.First(&lead, id).Error; err != nil {
		return lead, fmt.Errorf("lead %d: %w", id, ErrNotFound)
	}
	s.forward(&lead)
	return lead, nil
}

func (s *LeadService) List() ([]models.QuoteRequest, error) {
	var leads []models.QuoteRequest
	err := s.DB.Order("created_at DESC").Find(&leads).Error
	return leads, err
}

// ExportXLSX renders every lead into a spreadsheet for the sales team.
func (s *LeadService) ExportXLSX() (*excelize.File, error) {
	leads, err := s.List()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Nome", "E-mail", "Telefone", "Destino", "Mês", "Pessoas", "Mensagem", "CRM", "Recebido em"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, lead := range leads {
		values := []interface{}{
			lead.ID, lead.FullName, lead.Email, lead.Phone, lead.Destination,
			lead.TravelMonth, lead.PartySize, lead.Message, lead.CRMStatus,
			lead.CreatedAt.Format("02/01/2006 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}
