package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"tourism-backend/services"
	"tourism-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Svc    *services.HotelService
	Query  *services.HotelQueryService
	Lookup *services.LookupService
}

func NewHotelController(svc *services.HotelService, query *services.HotelQueryService, lookup *services.LookupService) *HotelController {
	return &HotelController{Svc: svc, Query: query, Lookup: lookup}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid id parameter",
		})
		return 0, false
	}
	return uint(v), true
}

// respondServiceError maps service sentinels and driver errors onto the
// HTTP taxonomy: 400 validation / mapped DB faults, 404 not-found,
// 500 with the underlying message for everything else.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Accommodation not found"})
	case errors.Is(err, services.ErrImageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Image not found"})
	case errors.Is(err, services.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Room not found"})
	case errors.Is(err, services.ErrStateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "State not found"})
	case errors.Is(err, services.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Category not found"})
	case errors.Is(err, services.ErrInvalidType):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid accommodation type"})
	case errors.Is(err, services.ErrRoomCountExceeded):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Available rooms cannot exceed total rooms"})
	default:
		if msg, ok := utils.MapDBError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": msg, "details": err.Error()})
			return
		}
		log.Printf("❌ DB ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
			"details": err.Error(),
		})
	}
}

// ----------------------------------------------------
// List (GET /api/hotels?type=) — admin view, every row
// ----------------------------------------------------

func (h *HotelController) ListHotels(c *gin.Context) {
	hotels, err := h.Query.List(c.Query("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// ----------------------------------------------------
// Search (GET /api/hotels/search) — public, active rows only
// ----------------------------------------------------

func queryUintPtr(c *gin.Context, key string) *uint {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

func queryFloatPtr(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

func (h *HotelController) SearchHotels(c *gin.Context) {
	filters := services.SearchFilters{
		Category:  queryUintPtr(c, "category"),
		State:     queryUintPtr(c, "state"),
		Location:  c.Query("location"),
		MinPrice:  queryFloatPtr(c, "minPrice"),
		MaxPrice:  queryFloatPtr(c, "maxPrice"),
		MinRating: queryFloatPtr(c, "rating"),
		Page:      queryInt(c, "page", 1),
		Limit:     queryInt(c, "limit", 10),
	}

	hotels, total, err := h.Query.Search(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  hotels,
		"total": total,
		"page":  filters.Page,
		"limit": filters.Limit,
	})
}

// ----------------------------------------------------
// Detail (GET /api/hotels/:id)
// ----------------------------------------------------

func (h *HotelController) GetHotel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	hotel, err := h.Query.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// ----------------------------------------------------
// Create (POST /api/hotels) — multipart, transactional
// ----------------------------------------------------

func (h *HotelController) CreateHotel(c *gin.Context) {
	input, err := parseHotelForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if input.FeaturedImage, err = saveFeaturedUpload(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	gallery, err := collectGalleryUploads(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	id, err := h.Svc.CreateHotel(input, gallery)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Printf("✅ Accommodation %d created (%s)", id, input.Name)
	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"message": "Accommodation created successfully",
	})
}

// ----------------------------------------------------
// Update (PUT /api/hotels/:id) — multipart, transactional
// ----------------------------------------------------

func (h *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	input, err := parseHotelForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	removeIDs, err := parseRemoveImages(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if input.FeaturedImage, err = saveFeaturedUpload(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	gallery, err := collectGalleryUploads(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	hotel, err := h.Svc.UpdateHotel(id, input, removeIDs, gallery)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// refreshed detail payload with public URLs
	if hotel.FeaturedImage != nil {
		u := h.Query.PublicImageURL(*hotel.FeaturedImage)
		hotel.FeaturedImage = &u
	}
	for i := range hotel.Images {
		hotel.Images[i].URL = h.Query.PublicImageURL(hotel.Images[i].URL)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Accommodation updated successfully",
		"data":    hotel,
	})
}

// ----------------------------------------------------
// PATCH /api/hotels/:id/accommodation-type
// ----------------------------------------------------

func (h *HotelController) UpdateAccommodationType(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload struct {
		AccommodationType string `json:"accommodation_type"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := h.Svc.UpdateAccommodationType(id, payload.AccommodationType); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Accommodation type updated successfully"})
}

// ----------------------------------------------------
// Delete (DELETE /api/hotels/:id)
// ----------------------------------------------------

func (h *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeleteHotel(id); err != nil {
		respondServiceError(c, err)
		return
	}
	log.Printf("✅ Accommodation %d deleted", id)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Accommodation deleted successfully"})
}

// ----------------------------------------------------
// DELETE /api/hotels/:id/images/:imageId
// ----------------------------------------------------

func (h *HotelController) DeleteImage(c *gin.Context) {
	hotelID, ok := paramID(c, "id")
	if !ok {
		return
	}
	imageID, ok := paramID(c, "imageId")
	if !ok {
		return
	}
	if err := h.Svc.DeleteImage(hotelID, imageID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Image deleted successfully"})
}

// ----------------------------------------------------
// GET /api/hotels/amenities/:type
// ----------------------------------------------------

func (h *HotelController) GetAmenitiesByType(c *gin.Context) {
	amenities, err := h.Lookup.AmenitiesByType(c.Param("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, amenities)
}
