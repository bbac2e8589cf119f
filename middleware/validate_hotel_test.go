package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/hotels", ValidateHotelPayload(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func validForm() url.Values {
	return url.Values{
		"name":               {"Mountain View Hotel"},
		"category_id":        {"1"},
		"location":           {"Mussoorie"},
		"address":            {"Mall Road"},
		"phone":              {"+919876543210"},
		"description":        {"A hotel with a view"},
		"accommodation_type": {"hotel"},
		"price_per_night":    {"2500"},
		"total_rooms":        {"20"},
		"available_rooms":    {"15"},
		"check_in_time":      {"12:00 PM"},
		"check_out_time":     {"10:00 AM"},
	}
}

func postForm(t *testing.T, r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/hotels", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateHotelPayload_Valid(t *testing.T) {
	w := postForm(t, validationRouter(), validForm())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateHotelPayload_MissingRequiredField(t *testing.T) {
	r := validationRouter()
	for _, field := range []string{"name", "category_id", "phone", "description", "check_in_time"} {
		form := validForm()
		form.Del(field)
		w := postForm(t, r, form)
		assert.Equal(t, http.StatusBadRequest, w.Code, "missing %s", field)
		assert.Contains(t, w.Body.String(), "required")
	}
}

func TestValidateHotelPayload_PhoneFormat(t *testing.T) {
	r := validationRouter()

	form := validForm()
	form.Set("phone", "9876543210") // missing +91 prefix
	w := postForm(t, r, form)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "+91")

	form.Set("phone", "+919876543210")
	w = postForm(t, r, form)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateHotelPayload_StarRatingRange(t *testing.T) {
	r := validationRouter()

	form := validForm()
	form.Set("star_rating", "5.5")
	w := postForm(t, r, form)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	form.Set("star_rating", "4.5")
	w = postForm(t, r, form)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateHotelPayload_RoomCountBoundary(t *testing.T) {
	r := validationRouter()

	// equal counts are accepted
	form := validForm()
	form.Set("total_rooms", "10")
	form.Set("available_rooms", "10")
	w := postForm(t, r, form)
	assert.Equal(t, http.StatusOK, w.Code)

	// one over is rejected
	form.Set("available_rooms", "11")
	w = postForm(t, r, form)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot exceed total rooms")

	form = validForm()
	form.Set("total_rooms", "0")
	w = postForm(t, r, form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateHotelPayload_TypeConditionals(t *testing.T) {
	r := validationRouter()

	form := validForm()
	form.Set("accommodation_type", "tent")
	w := postForm(t, r, form)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Tent capacity")

	form.Set("tent_capacity", "4")
	w = postForm(t, r, form)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Tent type")

	form.Set("tent_type", "safari")
	w = postForm(t, r, form)
	assert.Equal(t, http.StatusOK, w.Code)

	form = validForm()
	form.Set("accommodation_type", "resort")
	w = postForm(t, r, form)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Resort category")

	form.Set("resort_category", "premium")
	w = postForm(t, r, form)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateHotelPayload_UnknownType(t *testing.T) {
	form := validForm()
	form.Set("accommodation_type", "treehouse")
	w := postForm(t, validationRouter(), form)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid accommodation type")
}
