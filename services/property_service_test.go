package services

import (
	"testing"

	"xplore-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyCreateSlugsAreUnique(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	first, err := svc.Create(models.Property{Title: "Casa à Beira-Mar"})
	require.NoError(t, err)
	assert.Equal(t, "casa-a-beira-mar", first.Slug)

	second, err := svc.Create(models.Property{Title: "Casa à Beira-Mar"})
	require.NoError(t, err)
	assert.Equal(t, "casa-a-beira-mar-2", second.Slug)
}

func TestPropertyCreateRequiresTitle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	_, err := svc.Create(models.Property{Title: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetDetailBySlugComputesRollupServerSide(t *testing.T) {
	db := setupTestDB(t)
	spaceSvc := NewSpaceService(db, &fakeStorage{})
	propSvc := NewPropertyService(db)
	property, spaceType, bedType := seedProperty(t, db)

	twin := models.BedType{Name: "Twin", SleepsCount: 1}
	require.NoError(t, db.Create(&twin).Error)

	s1, _ := spaceSvc.CreateSpace(property.ID, spaceType.ID)
	_, err := spaceSvc.AddBed(s1.ID, bedType.ID, 1) // Queen x1
	require.NoError(t, err)
	_, err = spaceSvc.AddBed(s1.ID, twin.ID, 2) // Twin x2
	require.NoError(t, err)

	detail, err := propSvc.GetDetailBySlug("casa-a")
	require.NoError(t, err)
	assert.Equal(t, 3, detail.Rollup.TotalBeds)
	assert.Equal(t, 4, detail.Rollup.TotalCapacity)
	require.Len(t, detail.Rollup.RoomsSummary, 1)
	assert.Equal(t, "Bedroom", detail.Rollup.RoomsSummary[0].Name)
	assert.Equal(t, 1, detail.Rollup.RoomsSummary[0].Total)
}

func TestGetDetailHidesZeroBedSpacesButKeepsLabels(t *testing.T) {
	db := setupTestDB(t)
	spaceSvc := NewSpaceService(db, &fakeStorage{})
	propSvc := NewPropertyService(db)
	property, spaceType, bedType := seedProperty(t, db)

	// first space in order stays empty
	_, err := spaceSvc.CreateSpace(property.ID, spaceType.ID)
	require.NoError(t, err)
	occupied, _ := spaceSvc.CreateSpace(property.ID, spaceType.ID)
	_, err = spaceSvc.AddBed(occupied.ID, bedType.ID, 1)
	require.NoError(t, err)

	detail, err := propSvc.GetDetailBySlug("casa-a")
	require.NoError(t, err)

	// the empty space is not surfaced publicly
	require.Len(t, detail.Spaces, 1)
	assert.Equal(t, occupied.ID, detail.Spaces[0].ID)
	// but its slot still counts for the derived label
	assert.Equal(t, "Bedroom 2", detail.Spaces[0].Label)
}

func TestGetDetailUnpublishedIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	property := models.Property{Slug: "escondida", Title: "Escondida", Published: false}
	require.NoError(t, db.Create(&property).Error)

	_, err := svc.GetDetailBySlug("escondida")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditorViewKeepsZeroBedSpaces(t *testing.T) {
	db := setupTestDB(t)
	spaceSvc := NewSpaceService(db, &fakeStorage{})
	propSvc := NewPropertyService(db)
	property, spaceType, _ := seedProperty(t, db)

	spaceSvc.CreateSpace(property.ID, spaceType.ID)
	spaceSvc.CreateSpace(property.ID, spaceType.ID)

	detail, err := propSvc.EditorView(property.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Spaces, 2)
	assert.Zero(t, detail.Rollup.TotalBeds)
}

func TestPropertyDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	spaceSvc := NewSpaceService(db, &fakeStorage{})
	propSvc := NewPropertyService(db)
	property, spaceType, bedType := seedProperty(t, db)

	space, _ := spaceSvc.CreateSpace(property.ID, spaceType.ID)
	_, err := spaceSvc.AddBed(space.ID, bedType.ID, 2)
	require.NoError(t, err)

	require.NoError(t, propSvc.Delete(property.ID))

	var spaceCount, bedCount int64
	db.Model(&models.Space{}).Count(&spaceCount)
	db.Model(&models.RoomAssignment{}).Count(&bedCount)
	assert.Zero(t, spaceCount)
	assert.Zero(t, bedCount)
}
