package services

import (
	"encoding/json"
	"errors"
	"strings"

	"tourism-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HotelQueryService owns the read shapes: admin list, public filtered
// search, and the nested detail payload.
type HotelQueryService struct {
	DB *gorm.DB
	// BaseURL is prefixed onto stored filenames when building
	// responses, e.g. "http://localhost:8080".
	BaseURL string
}

func NewHotelQueryService(db *gorm.DB, baseURL string) *HotelQueryService {
	return &HotelQueryService{DB: db, BaseURL: strings.TrimRight(baseURL, "/")}
}

// SearchFilters mirrors the public listing query params.
type SearchFilters struct {
	Category  *uint
	State     *uint
	Location  string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Page      int
	Limit     int
}

// PublicImageURL turns a stored filename into an absolute URL.
func (s *HotelQueryService) PublicImageURL(filename string) string {
	if filename == "" {
		return ""
	}
	return s.BaseURL + "/uploads/" + HotelUploadDir + "/" + filename
}

func (s *HotelQueryService) rewriteImageURLs(hotels []models.Hotel) {
	for i := range hotels {
		if hotels[i].FeaturedImage != nil {
			u := s.PublicImageURL(*hotels[i].FeaturedImage)
			hotels[i].FeaturedImage = &u
		}
		for j := range hotels[i].Images {
			hotels[i].Images[j].URL = s.PublicImageURL(hotels[i].Images[j].URL)
		}
	}
}

// ensureJSONArray guards stored JSON text: anything that doesn't decode
// as an array comes back as [] instead of breaking the response.
func ensureJSONArray(raw datatypes.JSON) datatypes.JSON {
	if len(raw) == 0 {
		return datatypes.JSON("[]")
	}
	var arr []interface{}
	if err := json.Unmarshal(raw, &arr); err != nil {
		return datatypes.JSON("[]")
	}
	return raw
}

func normalizeJSONFields(hotel *models.Hotel) {
	hotel.Amenities = ensureJSONArray(hotel.Amenities)
	hotel.ResortFeatures = ensureJSONArray(hotel.ResortFeatures)
	hotel.HomestayFeatures = ensureJSONArray(hotel.HomestayFeatures)
	hotel.HostelFeatures = ensureJSONArray(hotel.HostelFeatures)
	hotel.GuesthouseFeatures = ensureJSONArray(hotel.GuesthouseFeatures)
}

// List is the admin view: every row regardless of is_active, newest
// first, optional accommodation-type filter.
func (s *HotelQueryService) List(typeFilter string) ([]models.Hotel, error) {
	q := s.DB.Preload("State").Preload("Images").Order("hotels.id DESC")
	if typeFilter != "" {
		q = q.Where("accommodation_type = ?", typeFilter)
	}

	var hotels []models.Hotel
	if err := q.Find(&hotels).Error; err != nil {
		return nil, err
	}
	for i := range hotels {
		normalizeJSONFields(&hotels[i])
	}
	s.rewriteImageURLs(hotels)
	return hotels, nil
}

// Search is the public filtered listing: active rows only, with
// category/state/location/price/rating filters and offset pagination.
// Returns the page plus the total matching count.
func (s *HotelQueryService) Search(f SearchFilters) ([]models.Hotel, int64, error) {
	q := s.DB.Model(&models.Hotel{}).Where("is_active = ?", true)

	if f.Category != nil {
		q = q.Where("category_id = ?", *f.Category)
	}
	if f.State != nil {
		q = q.Where("state_id = ?", *f.State)
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		q = q.Where("location LIKE ?", "%"+loc+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("price_per_night >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price_per_night <= ?", *f.MaxPrice)
	}
	if f.MinRating != nil {
		q = q.Where("star_rating >= ?", *f.MinRating)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	}

	var hotels []models.Hotel
	err := q.Preload("State").Preload("Images").
		Order("hotels.id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&hotels).Error
	if err != nil {
		return nil, 0, err
	}
	for i := range hotels {
		normalizeJSONFields(&hotels[i])
	}
	s.rewriteImageURLs(hotels)
	return hotels, total, nil
}

// GetByID returns the detail shape: state/category joins plus nested
// images and rooms, JSON columns decoded back to arrays.
func (s *HotelQueryService) GetByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.Preload("State").Preload("Category").Preload("Images").Preload("Rooms").
		First(&hotel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	normalizeJSONFields(&hotel)
	if hotel.FeaturedImage != nil {
		u := s.PublicImageURL(*hotel.FeaturedImage)
		hotel.FeaturedImage = &u
	}
	for i := range hotel.Images {
		hotel.Images[i].URL = s.PublicImageURL(hotel.Images[i].URL)
	}
	return &hotel, nil
}
