package controllers

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

func formContext(t *testing.T, form url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/hotels", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func TestParseHotelForm_Normalization(t *testing.T) {
	form := url.Values{
		"name":               {"  Mountain View  "},
		"category_id":        {"3"},
		"state_id":           {"null"}, // cleared select sends the sentinel
		"location":           {"Mussoorie"},
		"phone":              {"+919876543210"},
		"accommodation_type": {"hotel"},
		"total_rooms":        {"12"},
		"available_rooms":    {"7"},
		"price_per_night":    {"1999.50"},
		"star_rating":        {""},
		"latitude":           {"30.4599"},
		"longitude":          {"null"},
		"amenities":          {`["wifi","parking"]`},
		"is_active":          {"false"},
	}

	in, err := parseHotelForm(formContext(t, form))
	require.NoError(t, err)

	assert.Equal(t, "Mountain View", in.Name)
	assert.Equal(t, uint(3), in.CategoryID)
	assert.Nil(t, in.StateID)
	assert.Equal(t, 12, in.TotalRooms)
	assert.Equal(t, 7, in.AvailableRooms)
	require.NotNil(t, in.PricePerNight)
	assert.Equal(t, 1999.50, *in.PricePerNight)
	assert.Nil(t, in.StarRating)
	require.NotNil(t, in.Latitude)
	assert.Equal(t, 30.4599, *in.Latitude)
	assert.Nil(t, in.Longitude)
	assert.Equal(t, []string{"wifi", "parking"}, in.Amenities)
	require.NotNil(t, in.IsActive)
	assert.False(t, *in.IsActive)
}

func TestParseHotelForm_BadNumber(t *testing.T) {
	form := url.Values{
		"name":            {"X"},
		"price_per_night": {"cheap"},
	}
	_, err := parseHotelForm(formContext(t, form))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price_per_night")
}

func TestParseHotelForm_MalformedJSONArrayDegrades(t *testing.T) {
	form := url.Values{
		"name":      {"X"},
		"amenities": {"not json"},
	}
	in, err := parseHotelForm(formContext(t, form))
	require.NoError(t, err)
	assert.Nil(t, in.Amenities)
}

func TestParseRemoveImages(t *testing.T) {
	ids, err := parseRemoveImages(formContext(t, url.Values{"remove_images": {"[3,5,8]"}}))
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 5, 8}, ids)

	ids, err = parseRemoveImages(formContext(t, url.Values{}))
	require.NoError(t, err)
	assert.Nil(t, ids)

	ids, err = parseRemoveImages(formContext(t, url.Values{"remove_images": {"[]"}}))
	require.NoError(t, err)
	assert.Nil(t, ids)

	_, err = parseRemoveImages(formContext(t, url.Values{"remove_images": {"nope"}}))
	assert.Error(t, err)
}
