package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"xplore-backend/models"

	"gorm.io/gorm"
)

// SpaceService is the composite aggregate over a property's spaces and
// their bed assignments: create/rename/delete/reorder spaces, attach and
// remove beds, manage the per-space photo. Every mutation is one logical
// unit against the database; cascades run inside a transaction so no orphan
// assignment rows survive a failure. Photo file removal is best-effort and
// never blocks the row mutation.
//
// There is no optimistic-concurrency token anywhere here: two admins
// reordering from stale lists last-write-wins, which is the accepted
// behavior for this back-office.
type SpaceService struct {
	DB      *gorm.DB
	Storage ObjectStorage
}

func NewSpaceService(db *gorm.DB, storage ObjectStorage) *SpaceService {
	return &SpaceService{DB: db, Storage: storage}
}

// CreateSpace appends a new space at the end of the property's order. The
// space starts unnamed, photo-less and with no beds.
func (s *SpaceService) CreateSpace(propertyID, spaceTypeID uint) (models.Space, error) {
	var space models.Space

	var property models.Property
	if err := s.DB.First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return space, fmt.Errorf("property %d: %w", propertyID, ErrNotFound)
		}
		return space, err
	}

	var spaceType models.SpaceType
	if err := s.DB.First(&spaceType, spaceTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return space, fmt.Errorf("space type %d: %w", spaceTypeID, ErrNotFound)
		}
		return space, err
	}

	// next display_order: max(existing)+1, or 0 when the property is empty
	var maxOrder sql.NullInt64
	if err := s.DB.Model(&models.Space{}).
		Where("property_id = ?", propertyID).
		Select("MAX(display_order)").
		Scan(&maxOrder).Error; err != nil {
		return space, err
	}
	next := 0
	if maxOrder.Valid {
		next = int(maxOrder.Int64) + 1
	}

	space = models.Space{
		PropertyID:   propertyID,
		SpaceTypeID:  spaceTypeID,
		DisplayOrder: next,
	}
	if err := s.DB.Create(&space).Error; err != nil {
		return space, err
	}
	space.SpaceType = spaceType
	return space, nil
}

// RenameSpace sets or clears the custom label. Empty or blank input is
// normalized to nil so the derived "{type} {n}" label takes over again.
func (s *SpaceService) RenameSpace(spaceID uint, customName *string) error {
	var space models.Space
	if err := s.DB.First(&space, spaceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("space %d: %w", spaceID, ErrNotFound)
		}
		return err
	}

	normalized := normalizeCustomName(customName)
	return s.DB.Model(&space).Update("custom_name", normalized).Error
}

// DeleteSpace removes the space and all of its bed assignments in one
// transaction, then best-effort removes the stored photo file. A failed
// file delete is logged and swallowed: the rows are already gone and an
// orphaned file is acceptable.
func (s *SpaceService) DeleteSpace(spaceID uint) error {
	var space models.Space
	if err := s.DB.First(&space, spaceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("space %d: %w", spaceID, ErrNotFound)
		}
		return err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("space_id = ?", spaceID).Delete(&models.RoomAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Space{}, spaceID).Error
	})
	if err != nil {
		return err
	}

	if space.PhotoURL != "" && s.Storage != nil {
		if err := s.Storage.Delete(KeyFromPhotoURL(space.PhotoURL)); err != nil {
			log.Printf("warning: failed to delete photo for space %d: %v", spaceID, err)
		}
	}
	return nil
}

// ReorderSpaces reassigns display_order to match the submitted array
// position. The submitted ids must be exactly the property's current space
// id set — any addition, omission or duplicate rejects the whole call, so
// a stale editor can never silently drop a space from the order.
func (s *SpaceService) ReorderSpaces(propertyID uint, orderedIDs []uint) error {
	var current []models.Space
	if err := s.DB.Where("property_id = ?", propertyID).Find(&current).Error; err != nil {
		return err
	}
	if len(current) == 0 {
		var property models.Property
		if err := s.DB.First(&property, propertyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("property %d: %w", propertyID, ErrNotFound)
			}
			return err
		}
	}

	if len(orderedIDs) != len(current) {
		return fmt.Errorf("reorder expects %d space ids, got %d: %w", len(current), len(orderedIDs), ErrValidation)
	}
	existing := make(map[uint]bool, len(current))
	for _, sp := range current {
		existing[sp.ID] = true
	}
	seen := make(map[uint]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !existing[id] {
			return fmt.Errorf("space %d does not belong to property %d: %w", id, propertyID, ErrValidation)
		}
		if seen[id] {
			return fmt.Errorf("space %d listed twice: %w", id, ErrValidation)
		}
		seen[id] = true
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		for index, id := range orderedIDs {
			if err := tx.Model(&models.Space{}).Where("id = ?", id).
				Update("display_order", index).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AddBed attaches a quantity of one bed type to a space. Adding the same
// bed type twice creates two line items on purpose; the editor renders
// them separately and never merges.
func (s *SpaceService) AddBed(spaceID, bedTypeID uint, quantity int) (models.RoomAssignment, error) {
	var assignment models.RoomAssignment

	if quantity < 1 {
		return assignment, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	var space models.Space
	if err := s.DB.First(&space, spaceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assignment, fmt.Errorf("space %d: %w", spaceID, ErrNotFound)
		}
		return assignment, err
	}

	var bedType models.BedType
	if err := s.DB.First(&bedType, bedTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assignment, fmt.Errorf("bed type %d: %w", bedTypeID, ErrNotFound)
		}
		return assignment, err
	}

	assignment = models.RoomAssignment{
		SpaceID:   spaceID,
		BedTypeID: bedTypeID,
		Quantity:  quantity,
	}
	if err := s.DB.Create(&assignment).Error; err != nil {
		return assignment, err
	}
	assignment.BedType = bedType
	return assignment, nil
}

func (s *SpaceService) RemoveBed(assignmentID uint) error {
	result := s.DB.Delete(&models.RoomAssignment{}, assignmentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("bed %d: %w", assignmentID, ErrNotFound)
	}
	return nil
}

// SetSpacePhoto stores a new photo for the space and updates the row. The
// previous file is removed best-effort first; a failed store of the new
// file aborts, since the caller expects a URL back.
func (s *SpaceService) SetSpacePhoto(spaceID uint, imageB64 string) (string, error) {
	var space models.Space
	if err := s.DB.First(&space, spaceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("space %d: %w", spaceID, ErrNotFound)
		}
		return "", err
	}

	data, ext, err := DecodeBase64Image(imageB64)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrValidation)
	}

	if space.PhotoURL != "" {
		if err := s.Storage.Delete(KeyFromPhotoURL(space.PhotoURL)); err != nil {
			log.Printf("warning: failed to delete old photo for space %d: %v", spaceID, err)
		}
	}

	url, err := s.Storage.Put(NewObjectKey("spaces", ext), data, mimeTypeForExt(ext))
	if err != nil {
		return "", fmt.Errorf("store photo: %w", err)
	}

	if err := s.DB.Model(&space).Update("photo_url", url).Error; err != nil {
		return "", err
	}
	return url, nil
}

func (s *SpaceService) ClearSpacePhoto(spaceID uint) error {
	var space models.Space
	if err := s.DB.First(&space, spaceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("space %d: %w", spaceID, ErrNotFound)
		}
		return err
	}

	if space.PhotoURL != "" {
		if err := s.Storage.Delete(KeyFromPhotoURL(space.PhotoURL)); err != nil {
			log.Printf("warning: failed to delete photo for space %d: %v", spaceID, err)
		}
	}
	return s.DB.Model(&space).Update("photo_url", "").Error
}

// ListSpacesForProperty returns the property's spaces in display order with
// their space types resolved. Spaces with no beds are included — the
// public projection filters them, the editor flags them.
func (s *SpaceService) ListSpacesForProperty(propertyID uint) ([]models.Space, error) {
	var property models.Property
	if err := s.DB.First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("property %d: %w", propertyID, ErrNotFound)
		}
		return nil, err
	}

	var spaces []models.Space
	err := s.DB.Preload("SpaceType").
		Where("property_id = ?", propertyID).
		Order("display_order ASC").
		Find(&spaces).Error
	return spaces, err
}

// ListBedsForSpace returns the space's bed lines in insertion order.
// A deleted or unknown space id resolves to NotFound, not an empty list.
func (s *SpaceService) ListBedsForSpace(spaceID uint) ([]models.RoomAssignment, error) {
	var space models.Space
	if err := s.DB.First(&space, spaceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("space %d: %w", spaceID, ErrNotFound)
		}
		return nil, err
	}

	var beds []models.RoomAssignment
	err := s.DB.Preload("BedType").
		Where("space_id = ?", spaceID).
		Order("id ASC").
		Find(&beds).Error
	return beds, err
}

func normalizeCustomName(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
