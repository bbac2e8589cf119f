package controllers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"tourism-backend/services"

	"github.com/gin-gonic/gin"
)

// Gallery uploads beyond this are ignored, matching the upload field
// limit of the admin form.
const maxGalleryImages = 10

// isNullish reports the empty-value sentinels the admin form sends for
// cleared numeric inputs.
func isNullish(raw string) bool {
	return raw == "" || raw == "null" || raw == "undefined"
}

func formString(c *gin.Context, key string) string {
	return strings.TrimSpace(c.PostForm(key))
}

func formFloatPtr(c *gin.Context, key string) (*float64, error) {
	raw := formString(c, key)
	if isNullish(raw) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("field '%s' must be a number", key)
	}
	return &v, nil
}

func formInt(c *gin.Context, key string) (int, error) {
	raw := formString(c, key)
	if isNullish(raw) {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("field '%s' must be an integer", key)
	}
	return v, nil
}

func formIntPtr(c *gin.Context, key string) (*int, error) {
	raw := formString(c, key)
	if isNullish(raw) {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("field '%s' must be an integer", key)
	}
	return &v, nil
}

func formUint(c *gin.Context, key string) (uint, error) {
	raw := formString(c, key)
	if isNullish(raw) {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("field '%s' must be a positive integer", key)
	}
	return uint(v), nil
}

func formUintPtr(c *gin.Context, key string) (*uint, error) {
	raw := formString(c, key)
	if isNullish(raw) {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("field '%s' must be a positive integer", key)
	}
	u := uint(v)
	return &u, nil
}

func formStringPtr(c *gin.Context, key string) *string {
	raw := formString(c, key)
	if isNullish(raw) {
		return nil
	}
	return &raw
}

// parseStringArray decodes a JSON-array form value; malformed input
// degrades to empty rather than failing the request.
func parseStringArray(raw string) []string {
	raw = strings.TrimSpace(raw)
	if isNullish(raw) {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

// parseHotelForm normalizes the multipart form into the service input:
// numeric strings to typed numbers, '' / "null" sentinels to nil,
// JSON-text arrays decoded.
func parseHotelForm(c *gin.Context) (services.HotelInput, error) {
	in := services.HotelInput{
		Name:              formString(c, "name"),
		Slug:              formString(c, "slug"),
		Location:          formString(c, "location"),
		Address:           formString(c, "address"),
		Phone:             formString(c, "phone"),
		Description:       c.PostForm("description"),
		CheckInTime:       formString(c, "check_in_time"),
		CheckOutTime:      formString(c, "check_out_time"),
		AccommodationType: formString(c, "accommodation_type"),
		MetaTitle:         formStringPtr(c, "meta_title"),
		MetaDescription:   formStringPtr(c, "meta_description"),
		MetaKeywords:      formStringPtr(c, "meta_keywords"),
		TentType:          formStringPtr(c, "tent_type"),
		ResortCategory:    formStringPtr(c, "resort_category"),

		Amenities:          parseStringArray(c.PostForm("amenities")),
		ResortFeatures:     parseStringArray(c.PostForm("resort_features")),
		HomestayFeatures:   parseStringArray(c.PostForm("homestay_features")),
		HostelFeatures:     parseStringArray(c.PostForm("hostel_features")),
		GuesthouseFeatures: parseStringArray(c.PostForm("guesthouse_features")),
	}

	var err error
	if in.CategoryID, err = formUint(c, "category_id"); err != nil {
		return in, err
	}
	if in.StateID, err = formUintPtr(c, "state_id"); err != nil {
		return in, err
	}
	if in.TotalRooms, err = formInt(c, "total_rooms"); err != nil {
		return in, err
	}
	if in.AvailableRooms, err = formInt(c, "available_rooms"); err != nil {
		return in, err
	}
	if in.PricePerNight, err = formFloatPtr(c, "price_per_night"); err != nil {
		return in, err
	}
	if in.StarRating, err = formFloatPtr(c, "star_rating"); err != nil {
		return in, err
	}
	if in.Latitude, err = formFloatPtr(c, "latitude"); err != nil {
		return in, err
	}
	if in.Longitude, err = formFloatPtr(c, "longitude"); err != nil {
		return in, err
	}
	if in.TentCapacity, err = formIntPtr(c, "tent_capacity"); err != nil {
		return in, err
	}

	if raw := formString(c, "is_active"); !isNullish(raw) {
		active := raw == "true" || raw == "1"
		in.IsActive = &active
	}

	return in, nil
}

// parseRemoveImages decodes the remove_images JSON id array sent with
// updates.
func parseRemoveImages(c *gin.Context) ([]uint, error) {
	raw := formString(c, "remove_images")
	if isNullish(raw) || raw == "[]" {
		return nil, nil
	}
	var ids []uint
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("field 'remove_images' must be a JSON array of image ids")
	}
	return ids, nil
}

// collectGalleryUploads saves each uploaded gallery file and zips it
// with its alt_text_{i}/description_{i} form fields by index.
func collectGalleryUploads(c *gin.Context) ([]services.GalleryImage, error) {
	if c.Request.MultipartForm == nil {
		if _, err := c.MultipartForm(); err != nil {
			return nil, nil
		}
	}

	files := c.Request.MultipartForm.File["images"]
	if len(files) > maxGalleryImages {
		files = files[:maxGalleryImages]
	}

	gallery := make([]services.GalleryImage, 0, len(files))
	for i, fh := range files {
		filename, err := services.SaveUploadedImage(fh, services.HotelUploadDir)
		if err != nil {
			return nil, fmt.Errorf("failed to save gallery image %d: %w", i, err)
		}
		gallery = append(gallery, services.GalleryImage{
			Filename:    filename,
			AltText:     formString(c, fmt.Sprintf("alt_text_%d", i)),
			Description: formString(c, fmt.Sprintf("description_%d", i)),
		})
	}
	return gallery, nil
}

// saveFeaturedUpload stores the optional single featured_image file.
func saveFeaturedUpload(c *gin.Context) (*string, error) {
	fh, err := c.FormFile("featured_image")
	if err != nil {
		return nil, nil // not provided
	}
	filename, err := services.SaveUploadedImage(fh, services.HotelUploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to save featured image: %w", err)
	}
	return &filename, nil
}
