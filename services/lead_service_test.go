package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"xplore-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeadService(db, "")

	_, err := svc.Create(models.QuoteRequest{FullName: "  "})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(models.QuoteRequest{FullName: "Ana", Email: "", Phone: ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLeadCreateWithoutCRMStaysPending(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeadService(db, "")

	lead, err := svc.Create(models.QuoteRequest{FullName: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "pending", lead.CRMStatus)
	assert.Nil(t, lead.ForwardedAt)
}

func TestLeadForwardedOnCRMSuccess(t *testing.T) {
	db := setupTestDB(t)

	crm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer crm.Close()

	svc := NewLeadService(db, crm.URL)
	lead, err := svc.Create(models.QuoteRequest{FullName: "Ana", Phone: "+55 11 99999-0000", Destination: "Lisboa"})
	require.NoError(t, err)

	assert.Equal(t, "sent", lead.CRMStatus)
	require.NotNil(t, lead.ForwardedAt)

	var stored models.QuoteRequest
	require.NoError(t, db.First(&stored, lead.ID).Error)
	assert.Equal(t, "sent", stored.CRMStatus)
}

func TestLeadPersistsWhenCRMFails(t *testing.T) {
	db := setupTestDB(t)

	crm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer crm.Close()

	svc := NewLeadService(db, crm.URL)
	lead, err := svc.Create(models.QuoteRequest{FullName: "Bruno", Email: "bruno@example.com"})
	// the CRM outage never fails the public form
	require.NoError(t, err)
	assert.Equal(t, "pending", lead.CRMStatus)

	var count int64
	db.Model(&models.QuoteRequest{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLeadResend(t *testing.T) {
	db := setupTestDB(t)

	calls := 0
	crm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer crm.Close()

	svc := NewLeadService(db, crm.URL)
	lead, err := svc.Create(models.QuoteRequest{FullName: "Carla", Email: "carla@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "pending", lead.CRMStatus)

	resent, err := svc.Resend(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "sent", resent.CRMStatus)
}

func TestLeadExportXLSX(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeadService(db, "")

	_, err := svc.Create(models.QuoteRequest{FullName: "Ana", Email: "ana@example.com", Destination: "Lisboa"})
	require.NoError(t, err)

	f, err := svc.ExportXLSX()
	require.NoError(t, err)

	sheet := f.GetSheetName(0)
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	name, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)
}
