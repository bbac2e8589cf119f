package middleware

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"tourism-backend/models"

	"github.com/gin-gonic/gin"
)

var phoneRe = regexp.MustCompile(`^\+91[0-9]{10}$`)

// Required form fields for an accommodation create, checked in order.
var requiredHotelFields = []struct {
	key   string
	label string
}{
	{"name", "name"},
	{"category_id", "category"},
	{"location", "location"},
	{"address", "address"},
	{"phone", "phone number"},
	{"description", "description"},
	{"accommodation_type", "accommodation type"},
	{"price_per_night", "price per night"},
	{"total_rooms", "total rooms"},
	{"available_rooms", "available rooms"},
	{"check_in_time", "check-in time"},
	{"check_out_time", "check-out time"},
}

func fail(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": message,
	})
}

// ValidateHotelPayload runs the field-presence, format and range checks
// before the write path. Stateless: everything reads from the already
// sanitized form. Responds 400 with one message on the first failure.
func ValidateHotelPayload() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, f := range requiredHotelFields {
			if strings.TrimSpace(c.PostForm(f.key)) == "" {
				fail(c, "Field '"+f.label+"' is required")
				return
			}
		}

		if !phoneRe.MatchString(strings.TrimSpace(c.PostForm("phone"))) {
			fail(c, "Phone number must be +91 followed by 10 digits")
			return
		}

		if raw := strings.TrimSpace(c.PostForm("star_rating")); raw != "" && raw != "null" {
			rating, err := strconv.ParseFloat(raw, 64)
			if err != nil || rating < 0 || rating > 5 {
				fail(c, "Star rating must be between 0 and 5")
				return
			}
		}

		totalRooms, err := strconv.Atoi(strings.TrimSpace(c.PostForm("total_rooms")))
		if err != nil || totalRooms <= 0 {
			fail(c, "Total rooms must be a positive integer")
			return
		}
		availableRooms, err := strconv.Atoi(strings.TrimSpace(c.PostForm("available_rooms")))
		if err != nil || availableRooms < 0 {
			fail(c, "Available rooms must be a non-negative integer")
			return
		}
		if availableRooms > totalRooms {
			fail(c, "Available rooms cannot exceed total rooms")
			return
		}

		accType := strings.TrimSpace(c.PostForm("accommodation_type"))
		if !models.IsValidAccommodationType(accType) {
			fail(c, "Invalid accommodation type")
			return
		}

		switch accType {
		case models.TypeTent:
			capRaw := strings.TrimSpace(c.PostForm("tent_capacity"))
			capacity, err := strconv.Atoi(capRaw)
			if capRaw == "" || err != nil || capacity <= 0 {
				fail(c, "Tent capacity must be a positive integer for tent accommodations")
				return
			}
			if strings.TrimSpace(c.PostForm("tent_type")) == "" {
				fail(c, "Tent type is required for tent accommodations")
				return
			}
		case models.TypeResort:
			if strings.TrimSpace(c.PostForm("resort_category")) == "" {
				fail(c, "Resort category is required for resort accommodations")
				return
			}
		}

		c.Next()
	}
}
