package services

import (
	"errors"
	"fmt"
	"strings"

	"xplore-backend/models"
	"xplore-backend/utils"

	"gorm.io/gorm"
)

// PropertyService owns the listing CRUD and the public detail read. The
// detail payload carries the rollup computed server-side with the shared
// projector, so the public page never rebuilds it from raw rows.
type PropertyService struct {
	DB *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{DB: db}
}

// PropertyDetail is the public aggregate read: the property, its spaces in
// display order with beds and labels resolved, and the server-computed
// rollup.
type PropertyDetail struct {
	Property models.Property `json:"property"`
	Spaces   []SpaceView     `json:"spaces"`
	Rollup   Rollup          `json:"rollup"`
	Address  string          `json:"address"`
}

func (s *PropertyService) Create(property models.Property) (models.Property, error) {
	if strings.TrimSpace(property.Title) == "" {
		return property, fmt.Errorf("title is required: %w", ErrValidation)
	}

	slug, err := s.uniqueSlug(utils.Slugify(property.Title))
	if err != nil {
		return property, err
	}
	property.Slug = slug

	err = s.DB.Create(&property).Error
	return property, err
}

func (s *PropertyService) Update(id uint, fields map[string]interface{}) error {
	// slug and bookkeeping columns are never client-writable
	delete(fields, "id")
	delete(fields, "slug")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	result := s.DB.Model(&models.Property{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var property models.Property
		if err := s.DB.First(&property, id).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("property %d: %w", id, ErrNotFound)
		}
	}
	return nil
}

// Delete removes the property together with its spaces and their bed
// assignments in one transaction.
func (s *PropertyService) Delete(id uint) error {
	var property models.Property
	if err := s.DB.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("property %d: %w", id, ErrNotFound)
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var spaceIDs []uint
		if err := tx.Model(&models.Space{}).Where("property_id = ?", id).
			Pluck("id", &spaceIDs).Error; err != nil {
			return err
		}
		if len(spaceIDs) > 0 {
			if err := tx.Where("space_id IN ?", spaceIDs).Delete(&models.RoomAssignment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("property_id = ?", id).Delete(&models.Space{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Property{}, id).Error
	})
}

func (s *PropertyService) List(publishedOnly bool) ([]models.Property, error) {
	var properties []models.Property
	q := s.DB.Order("created_at DESC")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	err := q.Find(&properties).Error
	return properties, err
}

func (s *PropertyService) GetByID(id uint) (models.Property, error) {
	var property models.Property
	if err := s.DB.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return property, fmt.Errorf("property %d: %w", id, ErrNotFound)
		}
		return property, err
	}
	return property, nil
}

// GetDetailBySlug assembles the public aggregate read for one published
// property.
func (s *PropertyService) GetDetailBySlug(slug string) (PropertyDetail, error) {
	var detail PropertyDetail

	var property models.Property
	if err := s.DB.Where("slug = ? AND published = ?", slug, true).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return detail, fmt.Errorf("property %q: %w", slug, ErrNotFound)
		}
		return detail, err
	}

	spaces, err := s.spaceViews(property.ID)
	if err != nil {
		return detail, err
	}

	// labels and rollup come from the full ordered list; only the public
	// "where you'll sleep" section drops spaces with no beds configured
	public := make([]SpaceView, 0, len(spaces))
	for _, sp := range spaces {
		if len(sp.Beds) > 0 {
			public = append(public, sp)
		}
	}

	detail.Property = property
	detail.Spaces = public
	detail.Rollup = BuildRollup(spaces)
	detail.Address = utils.BuildAddress(property.Street, property.Number, property.District, property.City, property.State)
	return detail, nil
}

// EditorView is the same assembly for the admin editor: unpublished
// properties resolve too, and zero-bed spaces stay in the list (the editor
// flags them instead of hiding them).
func (s *PropertyService) EditorView(propertyID uint) (PropertyDetail, error) {
	var detail PropertyDetail

	property, err := s.GetByID(propertyID)
	if err != nil {
		return detail, err
	}

	spaces, err := s.spaceViews(property.ID)
	if err != nil {
		return detail, err
	}

	detail.Property = property
	detail.Spaces = spaces
	detail.Rollup = BuildRollup(spaces)
	detail.Address = utils.BuildAddress(property.Street, property.Number, property.District, property.City, property.State)
	return detail, nil
}

func (s *PropertyService) spaceViews(propertyID uint) ([]SpaceView, error) {
	var rows []models.Space
	if err := s.DB.Preload("SpaceType").
		Where("property_id = ?", propertyID).
		Order("display_order ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	spaceIDs := make([]uint, 0, len(rows))
	for _, sp := range rows {
		spaceIDs = append(spaceIDs, sp.ID)
	}

	bedsBySpace := map[uint][]models.RoomAssignment{}
	if len(spaceIDs) > 0 {
		var beds []models.RoomAssignment
		if err := s.DB.Preload("BedType").
			Where("space_id IN ?", spaceIDs).
			Order("id ASC").
			Find(&beds).Error; err != nil {
			return nil, err
		}
		for _, b := range beds {
			bedsBySpace[b.SpaceID] = append(bedsBySpace[b.SpaceID], b)
		}
	}

	views := make([]SpaceView, 0, len(rows))
	for _, sp := range rows {
		views = append(views, NewSpaceView(sp, bedsBySpace[sp.ID]))
	}
	FillLabels(views)
	return views, nil
}

func (s *PropertyService) uniqueSlug(base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		var count int64
		if err := s.DB.Model(&models.Property{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
