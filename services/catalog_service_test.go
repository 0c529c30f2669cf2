package services

import (
	"testing"

	"xplore-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteBedTypeBlockedWhileReferenced(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)
	spaces := NewSpaceService(db, &fakeStorage{})
	property, spaceType, bedType := seedProperty(t, db)

	space, _ := spaces.CreateSpace(property.ID, spaceType.ID)
	bed, err := spaces.AddBed(space.ID, bedType.ID, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, catalog.DeleteBedType(bedType.ID), ErrInUse)

	// once the last reference is gone the delete goes through
	require.NoError(t, spaces.RemoveBed(bed.ID))
	assert.NoError(t, catalog.DeleteBedType(bedType.ID))
}

func TestDeleteSpaceTypeBlockedWhileReferenced(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)
	spaces := NewSpaceService(db, &fakeStorage{})
	property, spaceType, _ := seedProperty(t, db)

	space, _ := spaces.CreateSpace(property.ID, spaceType.ID)

	assert.ErrorIs(t, catalog.DeleteSpaceType(spaceType.ID), ErrInUse)

	require.NoError(t, spaces.DeleteSpace(space.ID))
	assert.NoError(t, catalog.DeleteSpaceType(spaceType.ID))
}

func TestCatalogValidation(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	_, err := catalog.CreateBedType(models.BedType{Name: "", SleepsCount: 2})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = catalog.CreateBedType(models.BedType{Name: "Rede", SleepsCount: 0})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = catalog.CreateSpaceType(models.SpaceType{Name: "  "})
	assert.ErrorIs(t, err, ErrValidation)

	assert.ErrorIs(t, catalog.DeleteBedType(9999), ErrNotFound)
	assert.ErrorIs(t, catalog.DeleteSpaceType(9999), ErrNotFound)
}

func TestCatalogUpdate(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	bt, err := catalog.CreateBedType(models.BedType{Name: "Queen", SleepsCount: 2})
	require.NoError(t, err)

	updated, err := catalog.UpdateBedType(bt.ID, "Queen Size", 2)
	require.NoError(t, err)
	assert.Equal(t, "Queen Size", updated.Name)

	_, err = catalog.UpdateBedType(bt.ID, "Queen", 0)
	assert.ErrorIs(t, err, ErrValidation)
}
