package services

import (
	"errors"
	"testing"

	"xplore-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Property{},
		&models.BedType{},
		&models.SpaceType{},
		&models.Space{},
		&models.RoomAssignment{},
		&models.QuoteRequest{},
	))
	return db
}

type fakeStorage struct {
	puts    []string
	deletes []string
	failPut bool
}

func (f *fakeStorage) Put(key string, data []byte, mimeType string) (string, error) {
	if f.failPut {
		return "", errors.New("disk full")
	}
	f.puts = append(f.puts, key)
	return "/uploads/" + key, nil
}

func (f *fakeStorage) Delete(key string) error {
	f.deletes = append(f.deletes, key)
	return nil
}

func seedProperty(t *testing.T, db *gorm.DB) (models.Property, models.SpaceType, models.BedType) {
	property := models.Property{Slug: "casa-a", Title: "Casa A", Published: true}
	require.NoError(t, db.Create(&property).Error)

	spaceType := models.SpaceType{Name: "Bedroom"}
	require.NoError(t, db.Create(&spaceType).Error)

	bedType := models.BedType{Name: "Queen", SleepsCount: 2}
	require.NoError(t, db.Create(&bedType).Error)

	return property, spaceType, bedType
}

func TestCreateSpaceAssignsNextDisplayOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSpaceService(db, &fakeStorage{})
	property, spaceType, _ := seedProperty(t, db)

	first, err := svc.CreateSpace(property.ID, spaceType.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, first.DisplayOrder)
	assert.Nil(t, first.CustomName)
	assert.Empty(t, first.PhotoURL)

	second, err := svc.CreateSpace(property.ID, spaceType.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, second.DisplayOrder)
}

func TestCreateSpaceUnknownRefs(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSpaceService(db, &fakeStorage{})
	property, spaceType, _ := seedProperty(t, db)

	_, err := svc.CreateSpace(9999, spaceType.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CreateSpace(property.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReorderSpaces(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSpaceService(db, &fakeStorage{})
	property, spaceType, _ := seedProperty(t, db)

	s1, _ := svc.CreateSpace(property.ID, spaceType.ID)
	s2, _ := svc.CreateSpace(property.ID, spaceType.ID)
	s3, _ := svc.CreateSpace(property.ID, spaceType.ID)

	require.NoError(t, svc.ReorderSpaces(property.ID, []uint{s3.ID, s1.ID, s2.ID}))

	spaces, err := svc.ListSpacesForProperty(property.ID)
	require.NoError(t, err)
	require.Len(t, spaces, 3)
	assert.Equal(t, []uint{s3.ID, s1.ID, s2.ID}, []uint{spaces[0].ID, spaces[1].ID, spaces[2].ID})
	for i, sp := range spaces {
		assert.Equal(t, i, sp.DisplayOrder)
	}
}

func TestReorderSpacesRejectsIDSetMismatch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSpaceService(db, &fakeStorage{})
	property, spaceType, _ := seedProperty(t, db)

	s1, _ := svc.CreateSpace(property.ID, spaceType.ID)
	s2, _ := svc.CreateSpace(property.ID, spaceType.ID)

	// omission
	assert.ErrorIs(t, svc.ReorderSpaces(property.ID, []uint{s1.ID}), ErrValidation)
	// addition
	assert.ErrorIs(t, svc.ReorderSpaces(property.ID, []uint{s1.ID, s2.ID, 777}), ErrValidation)
	// duplicate
	assert.ErrorIs(t, svc.ReorderSpaces(property.ID, []uint{s1.ID, s1.ID}), ErrValidation)

	// a rejected reorder changes nothing
	spaces, err := svc.ListSpacesForProperty(property.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{s1.ID, s2.ID}, []uint{spaces[0].ID, spaces[1].ID})
}

func TestReorderSpacesUnknownProperty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSpaceService(db, &fakeStorage{})
	seedProperty(t, db)

	assert.ErrorIs(t, svc.ReorderSpaces(9999, []uint{}), ErrNotFound)
}

func TestDeleteSpaceCascadesAssignments(t *testing.T) {
	db := setupTestDB(t)
	storage := &fakeStorage{}
	svc := NewSpaceService(db, storage)
	property, spaceType, bedType := seedProperty(t, db)

	space, _ := svc.CreateSpace(property.ID, spaceType.ID)
	_, err := svc.AddBed(space.ID, bedType.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddBed(space.ID, bedType.ID, 2)
	require.NoError(t, err)

	_, err = svc.SetSpacePhoto(space.ID, "aGVsbG8=")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSpace(space.ID))

	// no orphan rows in a full table scan
	var orphans int64
	db.Model(&models.RoomAssignment{}).Count(&orphans)
	assert.Zero(t, orphans)

	// photo file removed best-effort
	assert.Len(t, storage.deletes, 1)

	// the space id no longer resolves
	_, err = svc.ListBedsForSpace(space.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddBedValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSpaceService(db, &fakeStorage{})
	property, spaceType, bedType := seedProperty(t, db)
	space, _ := svc.CreateSpace(property.ID, spaceType.ID)

	_, err := svc.AddBed(space.ID, bedType.ID, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddBed(9999, bedType.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.AddBed(space.ID, 9999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddBedKeepsDuplicateLineItems(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSpaceService(db, &fakeStorage{})
	property, spaceType, bedType := seedProperty(t, db)
	space, _ := svc.CreateSpace(property.ID, spaceType.ID)

	_, err := svc.AddBed(space.ID, bedType.ID, 2)
	require.NoError(t, err)
	_, err = svc.AddBed(space.ID, bedType.ID, 1)
	require.NoError(t, err)

	beds, err := svc.ListBedsForSpace(space.ID)
	require.NoError(t, err)
	// two separate rows, never merged into quantity 3
	require.Len(t, beds, 2)
	assert.Equal(t, 2, beds[0].Quantity)
	assert.Equal(t, 1, beds[1].Quantity)
}

func TestRemoveBed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSpaceService(db, &fakeStorage{})
	property, spaceType, bedType := seedProperty(t, db)
	space, _ := svc.CreateSpace(property.ID, spaceType.ID)
	bed, _ := svc.AddBed(space.ID, bedType.ID, 1)

	require.NoError(t, svc.RemoveBed(bed.ID))
	assert.ErrorIs(t, svc.RemoveBed(bed.ID), ErrNotFound)
}

func TestRenameSpaceNormalizesEmptyToNil(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSpaceService(db, &fakeStorage{})
	property, spaceType, _ := seedProperty(t, db)
	space, _ := svc.CreateSpace(property.ID, spaceType.ID)

	name := "Suíte Master"
	require.NoError(t, svc.RenameSpace(space.ID, &name))

	var got models.Space
	require.NoError(t, db.First(&got, space.ID).Error)
	require.NotNil(t, got.CustomName)
	assert.Equal(t, "Suíte Master", *got.CustomName)

	// renaming to "" is the same as renaming to null
	empty := "   "
	require.NoError(t, svc.RenameSpace(space.ID, &empty))
	require.NoError(t, db.First(&got, space.ID).Error)
	assert.Nil(t, got.CustomName)
}

func TestSetSpacePhotoReplacesOldFile(t *testing.T) {
	db := setupTestDB(t)
	storage := &fakeStorage{}
	svc := NewSpaceService(db, storage)
	property, spaceType, _ := seedProperty(t, db)
	space, _ := svc.CreateSpace(property.ID, spaceType.ID)

	url1, err := svc.SetSpacePhoto(space.ID, "aGVsbG8=")
	require.NoError(t, err)
	assert.NotEmpty(t, url1)
	assert.Empty(t, storage.deletes)

	url2, err := svc.SetSpacePhoto(space.ID, "d29ybGQ=")
	require.NoError(t, err)
	assert.NotEqual(t, url1, url2)
	// old file removed before the new one was stored
	require.Len(t, storage.deletes, 1)
	assert.Equal(t, KeyFromPhotoURL(url1), storage.deletes[0])

	var got models.Space
	require.NoError(t, db.First(&got, space.ID).Error)
	assert.Equal(t, url2, got.PhotoURL)
}

func TestSetSpacePhotoStoreFailureAborts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSpaceService(db, &fakeStorage{failPut: true})
	property, spaceType, _ := seedProperty(t, db)
	space, _ := svc.CreateSpace(property.ID, spaceType.ID)

	_, err := svc.SetSpacePhoto(space.ID, "aGVsbG8=")
	require.Error(t, err)

	var got models.Space
	require.NoError(t, db.First(&got, space.ID).Error)
	assert.Empty(t, got.PhotoURL)
}

func TestClearSpacePhoto(t *testing.T) {
	db := setupTestDB(t)
	storage := &fakeStorage{}
	svc := NewSpaceService(db, storage)
	property, spaceType, _ := seedProperty(t, db)
	space, _ := svc.CreateSpace(property.ID, spaceType.ID)

	_, err := svc.SetSpacePhoto(space.ID, "aGVsbG8=")
	require.NoError(t, err)

	require.NoError(t, svc.ClearSpacePhoto(space.ID))
	assert.Len(t, storage.deletes, 1)

	var got models.Space
	require.NoError(t, db.First(&got, space.ID).Error)
	assert.Empty(t, got.PhotoURL)
}

func TestListSpacesIncludesZeroBedSpaces(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSpaceService(db, &fakeStorage{})
	property, spaceType, bedType := seedProperty(t, db)

	withBeds, _ := svc.CreateSpace(property.ID, spaceType.ID)
	svc.CreateSpace(property.ID, spaceType.ID) // stays empty
	_, err := svc.AddBed(withBeds.ID, bedType.ID, 1)
	require.NoError(t, err)

	spaces, err := svc.ListSpacesForProperty(property.ID)
	require.NoError(t, err)
	assert.Len(t, spaces, 2)
}
