package services

import (
	"errors"
	"fmt"
	"strings"

	"xplore-backend/models"

	"gorm.io/gorm"
)

// CatalogService manages the two global catalogs (bed types, space types).
// Deleting an entry that is still referenced by any assignment or space is
// blocked with ErrInUse — orphaning references would force every projector
// consumer to defend against dangling bed types.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

func (s *CatalogService) ListBedTypes() ([]models.BedType, error) {
	var types []models.BedType
	err := s.DB.Order("name ASC").Find(&types).Error
	return types, err
}

func (s *CatalogService) CreateBedType(bt models.BedType) (models.BedType, error) {
	bt.Name = strings.TrimSpace(bt.Name)
	if bt.Name == "" {
		return bt, fmt.Errorf("name is required: %w", ErrValidation)
	}
	if bt.SleepsCount < 1 {
		return bt, fmt.Errorf("sleepsCount must be at least 1: %w", ErrValidation)
	}
	err := s.DB.Create(&bt).Error
	return bt, err
}

func (s *CatalogService) UpdateBedType(id uint, name string, sleepsCount int) (models.BedType, error) {
	var bt models.BedType
	if err := s.DB.First(&bt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bt, fmt.Errorf("bed type %d: %w", id, ErrNotFound)
		}
		return bt, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return bt, fmt.Errorf("name is required: %w", ErrValidation)
	}
	if sleepsCount < 1 {
		return bt, fmt.Errorf("sleepsCount must be at least 1: %w", ErrValidation)
	}

	bt.Name = name
	bt.SleepsCount = sleepsCount
	err := s.DB.Save(&bt).Error
	return bt, err
}

func (s *CatalogService) DeleteBedType(id uint) error {
	var bt models.BedType
	if err := s.DB.First(&bt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("bed type %d: %w", id, ErrNotFound)
		}
		return err
	}

	var refs int64
	if err := s.DB.Model(&models.RoomAssignment{}).Where("bed_type_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("bed type %d has %d bed assignments: %w", id, refs, ErrInUse)
	}
	return s.DB.Delete(&bt).Error
}

func (s *CatalogService) ListSpaceTypes() ([]models.SpaceType, error) {
	var types []models.SpaceType
	err := s.DB.Order("name ASC").Find(&types).Error
	return types, err
}

func (s *CatalogService) CreateSpaceType(st models.SpaceType) (models.SpaceType, error) {
	st.Name = strings.TrimSpace(st.Name)
	if st.Name == "" {
		return st, fmt.Errorf("name is required: %w", ErrValidation)
	}
	err := s.DB.Create(&st).Error
	return st, err
}

func (s *CatalogService) UpdateSpaceType(id uint, name, icon string) (models.SpaceType, error) {
	var st models.SpaceType
	if err := s.DB.First(&st, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return st, fmt.Errorf("space type %d: %w", id, ErrNotFound)
		}
		return st, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return st, fmt.Errorf("name is required: %w", ErrValidation)
	}

	st.Name = name
	st.Icon = strings.TrimSpace(icon)
	err := s.DB.Save(&st).Error
	return st, err
}

func (s *CatalogService) DeleteSpaceType(id uint) error {
	var st models.SpaceType
	if err := s.DB.First(&st, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("space type %d: %w", id, ErrNotFound)
		}
		return err
	}

	var refs int64
	if err := s.DB.Model(&models.Space{}).Where("space_type_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("space type %d has %d spaces: %w", id, refs, ErrInUse)
	}
	return s.DB.Delete(&st).Error
}
