package services

import (
	"errors"

	"tourism-backend/models"

	"gorm.io/gorm"
)

var (
	ErrStateNotFound    = errors.New("state_not_found")
	ErrCategoryNotFound = errors.New("category_not_found")
)

// LookupService covers the small reference tables the admin tool
// manages alongside accommodations: states, categories and the
// per-type amenity lists.
type LookupService struct {
	DB *gorm.DB
}

func NewLookupService(db *gorm.DB) *LookupService {
	return &LookupService{DB: db}
}

// ---------------- States ----------------

func (s *LookupService) GetStates() ([]models.State, error) {
	var states []models.State
	err := s.DB.Order("name ASC").Find(&states).Error
	return states, err
}

func (s *LookupService) CreateState(state *models.State) error {
	return s.DB.Create(state).Error
}

func (s *LookupService) UpdateState(id uint, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "deleted_at")

	res := s.DB.Model(&models.State{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateNotFound
	}
	return nil
}

func (s *LookupService) DeleteState(id uint) error {
	res := s.DB.Delete(&models.State{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateNotFound
	}
	return nil
}

// ---------------- Categories ----------------

func (s *LookupService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	err := s.DB.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (s *LookupService) CreateCategory(category *models.Category) error {
	return s.DB.Create(category).Error
}

func (s *LookupService) DeleteCategory(id uint) error {
	res := s.DB.Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// ---------------- Amenities ----------------

// AmenitiesByType returns the lookup rows for one accommodation type.
// Unknown types yield an empty list, not an error.
func (s *LookupService) AmenitiesByType(accommodationType string) ([]models.Amenity, error) {
	var amenities []models.Amenity
	err := s.DB.Where("accommodation_type = ?", accommodationType).
		Order("name ASC").
		Find(&amenities).Error
	return amenities, err
}
