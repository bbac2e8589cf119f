package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"tourism-backend/models"
	"tourism-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrHotelNotFound     = errors.New("hotel_not_found")
	ErrImageNotFound     = errors.New("image_not_found")
	ErrInvalidType       = errors.New("invalid_accommodation_type")
	ErrRoomCountExceeded = errors.New("available_rooms_exceeds_total")
	ErrSlugExhausted     = errors.New("slug_space_exhausted")
)

const (
	// How far the probe walks before giving up (base, base-1, ... base-N).
	maxSlugProbes = 100
	// Retries when a concurrent create grabs the probed slug first and
	// the unique index rejects ours.
	maxCreateRetries = 5
)

// HotelInput is the normalized form payload for create/update. The
// controller parses the multipart form into this; numeric sentinels
// ('' / "null") are already mapped to nil pointers by then.
type HotelInput struct {
	Name string
	Slug string

	CategoryID uint
	StateID    *uint

	Location    string
	Address     string
	Phone       string
	Description string

	CheckInTime  string
	CheckOutTime string

	TotalRooms     int
	AvailableRooms int

	PricePerNight *float64
	StarRating    *float64
	Latitude      *float64
	Longitude     *float64

	MetaTitle       *string
	MetaDescription *string
	MetaKeywords    *string

	AccommodationType string

	TentCapacity *int
	TentType     *string

	ResortCategory *string
	ResortFeatures []string

	HomestayFeatures   []string
	HostelFeatures     []string
	GuesthouseFeatures []string

	Amenities []string

	FeaturedImage *string
	IsActive      *bool
}

// GalleryImage pairs an already-saved upload with its form metadata.
type GalleryImage struct {
	Filename    string
	AltText     string
	Description string
}

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func jsonArray(values []string) datatypes.JSON {
	if len(values) == 0 {
		return datatypes.JSON("[]")
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

// typeFields returns the type-conditional columns for the submitted
// accommodation type. Exactly one branch is populated; every other
// branch carries its empty default so an update wipes stale values.
func typeFields(in HotelInput) map[string]interface{} {
	fields := map[string]interface{}{
		"tent_capacity":       nil,
		"tent_type":           nil,
		"resort_category":     nil,
		"resort_features":     datatypes.JSON("[]"),
		"homestay_features":   datatypes.JSON("[]"),
		"hostel_features":     datatypes.JSON("[]"),
		"guesthouse_features": datatypes.JSON("[]"),
	}

	switch in.AccommodationType {
	case models.TypeTent:
		fields["tent_capacity"] = in.TentCapacity
		fields["tent_type"] = in.TentType
	case models.TypeResort:
		fields["resort_category"] = in.ResortCategory
		fields["resort_features"] = jsonArray(in.ResortFeatures)
	case models.TypeHomestay:
		fields["homestay_features"] = jsonArray(in.HomestayFeatures)
	case models.TypeHostel:
		fields["hostel_features"] = jsonArray(in.HostelFeatures)
	case models.TypeGuesthouse:
		fields["guesthouse_features"] = jsonArray(in.GuesthouseFeatures)
	}
	return fields
}

func (s *HotelService) validateInput(in HotelInput) error {
	if !models.IsValidAccommodationType(in.AccommodationType) {
		return ErrInvalidType
	}
	// Middleware already checked this on POST, but PUT reaches the
	// write path without it, so the service rechecks.
	if in.AvailableRooms > in.TotalRooms {
		return ErrRoomCountExceeded
	}
	return nil
}

func (s *HotelService) slugBase(in HotelInput) string {
	base := strings.TrimSpace(in.Slug)
	if base == "" {
		base = utils.Slugify(in.Name)
	}
	if base == "" {
		base = "accommodation"
	}
	return base
}

// resolveSlug probes hotels for the first unused candidate:
// base, base-1, base-2, ... Concurrent creates can both pass the probe;
// the unique index on slug catches that and the caller re-probes.
func (s *HotelService) resolveSlug(base string) (string, error) {
	for attempt := 0; attempt <= maxSlugProbes; attempt++ {
		candidate := utils.NextSlug(base, attempt)
		var count int64
		if err := s.DB.Model(&models.Hotel{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to probe slug %q: %w", candidate, err)
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", ErrSlugExhausted
}

func buildHotel(in HotelInput) models.Hotel {
	hotel := models.Hotel{
		Name:              strings.TrimSpace(in.Name),
		CategoryID:        in.CategoryID,
		StateID:           in.StateID,
		Location:          strings.TrimSpace(in.Location),
		Address:           strings.TrimSpace(in.Address),
		Phone:             strings.TrimSpace(in.Phone),
		Description:       in.Description,
		CheckInTime:       in.CheckInTime,
		CheckOutTime:      in.CheckOutTime,
		TotalRooms:        in.TotalRooms,
		AvailableRooms:    in.AvailableRooms,
		PricePerNight:     in.PricePerNight,
		StarRating:        in.StarRating,
		Latitude:          in.Latitude,
		Longitude:         in.Longitude,
		MetaTitle:         in.MetaTitle,
		MetaDescription:   in.MetaDescription,
		MetaKeywords:      in.MetaKeywords,
		AccommodationType: in.AccommodationType,
		Amenities:         jsonArray(in.Amenities),
		FeaturedImage:     in.FeaturedImage,
		IsActive:          true,
	}
	if in.IsActive != nil {
		hotel.IsActive = *in.IsActive
	}

	// type-conditional branch: defaults first, then the matching branch
	hotel.ResortFeatures = datatypes.JSON("[]")
	hotel.HomestayFeatures = datatypes.JSON("[]")
	hotel.HostelFeatures = datatypes.JSON("[]")
	hotel.GuesthouseFeatures = datatypes.JSON("[]")

	switch in.AccommodationType {
	case models.TypeTent:
		hotel.TentCapacity = in.TentCapacity
		hotel.TentType = in.TentType
	case models.TypeResort:
		hotel.ResortCategory = in.ResortCategory
		hotel.ResortFeatures = jsonArray(in.ResortFeatures)
	case models.TypeHomestay:
		hotel.HomestayFeatures = jsonArray(in.HomestayFeatures)
	case models.TypeHostel:
		hotel.HostelFeatures = jsonArray(in.HostelFeatures)
	case models.TypeGuesthouse:
		hotel.GuesthouseFeatures = jsonArray(in.GuesthouseFeatures)
	}

	return hotel
}

func galleryRows(hotelID uint, gallery []GalleryImage) []models.HotelImage {
	rows := make([]models.HotelImage, 0, len(gallery))
	for _, g := range gallery {
		rows = append(rows, models.HotelImage{
			HotelID:     hotelID,
			URL:         g.Filename,
			AltText:     g.AltText,
			Description: g.Description,
		})
	}
	return rows
}

// CreateHotel persists the accommodation row and its initial gallery as
// one transaction. A failure anywhere rolls the whole thing back.
func (s *HotelService) CreateHotel(in HotelInput, gallery []GalleryImage) (uint, error) {
	if err := s.validateInput(in); err != nil {
		return 0, err
	}

	base := s.slugBase(in)

	var lastErr error
	for attempt := 0; attempt < maxCreateRetries; attempt++ {
		slug, err := s.resolveSlug(base)
		if err != nil {
			return 0, err
		}

		hotel := buildHotel(in)
		hotel.Slug = slug

		lastErr = s.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&hotel).Error; err != nil {
				return err
			}
			if len(gallery) > 0 {
				if err := tx.Create(galleryRows(hotel.ID, gallery)).Error; err != nil {
					return fmt.Errorf("failed to insert gallery images: %w", err)
				}
			}
			return nil
		})
		if lastErr == nil {
			return hotel.ID, nil
		}
		if utils.IsDuplicateKey(lastErr) {
			log.Printf("⚠️ slug %q taken by a concurrent create (attempt %d), re-probing", slug, attempt+1)
			continue
		}
		return 0, lastErr
	}
	return 0, fmt.Errorf("failed to create accommodation after retries: %w", lastErr)
}

// updateColumns builds the column map for UPDATE. A map (not a struct)
// so zeroed type-branch fields actually reset to their defaults.
func updateColumns(in HotelInput) map[string]interface{} {
	cols := map[string]interface{}{
		"name":               strings.TrimSpace(in.Name),
		"category_id":        in.CategoryID,
		"state_id":           in.StateID,
		"location":           strings.TrimSpace(in.Location),
		"address":            strings.TrimSpace(in.Address),
		"phone":              strings.TrimSpace(in.Phone),
		"description":        in.Description,
		"check_in_time":      in.CheckInTime,
		"check_out_time":     in.CheckOutTime,
		"total_rooms":        in.TotalRooms,
		"available_rooms":    in.AvailableRooms,
		"price_per_night":    in.PricePerNight,
		"star_rating":        in.StarRating,
		"latitude":           in.Latitude,
		"longitude":          in.Longitude,
		"meta_title":         in.MetaTitle,
		"meta_description":   in.MetaDescription,
		"meta_keywords":      in.MetaKeywords,
		"accommodation_type": in.AccommodationType,
		"amenities":          jsonArray(in.Amenities),
	}
	for col, v := range typeFields(in) {
		cols[col] = v
	}
	if in.Slug != "" {
		cols["slug"] = strings.TrimSpace(in.Slug)
	}
	if in.FeaturedImage != nil {
		cols["featured_image"] = in.FeaturedImage
	}
	if in.IsActive != nil {
		cols["is_active"] = *in.IsActive
	}
	return cols
}

// UpdateHotel runs image removal, image insertion and the row UPDATE in
// one transaction. On-disk files for removed images are unlinked only
// after the transaction commits, so a rollback never loses a file.
func (s *HotelService) UpdateHotel(id uint, in HotelInput, removeImageIDs []uint, gallery []GalleryImage) (*models.Hotel, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	var removedFiles []string

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.Hotel{}).Where("id = ?", id).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return ErrHotelNotFound
		}

		if len(removeImageIDs) > 0 {
			var doomed []models.HotelImage
			if err := tx.Where("hotel_id = ? AND id IN ?", id, removeImageIDs).Find(&doomed).Error; err != nil {
				return fmt.Errorf("failed to load images for removal: %w", err)
			}
			for _, img := range doomed {
				removedFiles = append(removedFiles, img.URL)
			}
			if err := tx.Where("hotel_id = ? AND id IN ?", id, removeImageIDs).Delete(&models.HotelImage{}).Error; err != nil {
				return fmt.Errorf("failed to delete image rows: %w", err)
			}
		}

		if len(gallery) > 0 {
			if err := tx.Create(galleryRows(id, gallery)).Error; err != nil {
				return fmt.Errorf("failed to insert gallery images: %w", err)
			}
		}

		// not-found is decided by the existence check above; MySQL reports
		// zero affected rows for a no-op re-submit, so RowsAffected is not
		// a reliable signal here
		return tx.Model(&models.Hotel{}).Where("id = ?", id).Updates(updateColumns(in)).Error
	})
	if err != nil {
		return nil, err
	}

	for _, f := range removedFiles {
		RemoveUploadedImage(HotelUploadDir, f)
	}

	// refreshed detail payload, read outside the transaction
	var hotel models.Hotel
	if err := s.DB.Preload("State").Preload("Category").Preload("Images").Preload("Rooms").First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

// UpdateAccommodationType changes just that column after a closed-set
// check. Type-specific fields of the previous type are left as-is; the
// next full update resets them.
func (s *HotelService) UpdateAccommodationType(id uint, newType string) error {
	if !models.IsValidAccommodationType(newType) {
		return ErrInvalidType
	}
	res := s.DB.Model(&models.Hotel{}).Where("id = ?", id).Update("accommodation_type", newType)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrHotelNotFound
	}
	return nil
}

// DeleteHotel removes image rows, room rows and the accommodation row
// in one transaction, then unlinks the files after commit.
func (s *HotelService) DeleteHotel(id uint) error {
	var files []string
	var featured *string

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.First(&hotel, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHotelNotFound
			}
			return err
		}
		featured = hotel.FeaturedImage

		var images []models.HotelImage
		if err := tx.Where("hotel_id = ?", id).Find(&images).Error; err != nil {
			return err
		}
		for _, img := range images {
			files = append(files, img.URL)
		}

		if err := tx.Where("hotel_id = ?", id).Delete(&models.HotelImage{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("hotel_id = ?", id).Delete(&models.HotelRoom{}).Error; err != nil {
			return err
		}
		// hard delete: a soft-deleted row would keep its slug locked in
		// the unique index while staying invisible to the probe
		return tx.Unscoped().Delete(&models.Hotel{}, id).Error
	})
	if err != nil {
		return err
	}

	for _, f := range files {
		RemoveUploadedImage(HotelUploadDir, f)
	}
	if featured != nil {
		RemoveUploadedImage(HotelUploadDir, *featured)
	}
	return nil
}

// DeleteImage removes one gallery image row, then its file.
func (s *HotelService) DeleteImage(hotelID, imageID uint) error {
	var img models.HotelImage
	err := s.DB.Where("hotel_id = ? AND id = ?", hotelID, imageID).First(&img).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}
	if err := s.DB.Delete(&models.HotelImage{}, img.ID).Error; err != nil {
		return err
	}
	RemoveUploadedImage(HotelUploadDir, img.URL)
	return nil
}
