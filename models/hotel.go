package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Closed set of accommodation types. The type decides which of the
// type-specific columns below are meaningful; ResolveTypeFields in the
// service layer resets every other branch to its empty default.
const (
	TypeHotel      = "hotel"
	TypeTent       = "tent"
	TypeResort     = "resort"
	TypeHomestay   = "homestay"
	TypeHostel     = "hostel"
	TypeGuesthouse = "guesthouse"
	TypeCottage    = "cottage"
)

var AccommodationTypes = []string{
	TypeHotel, TypeTent, TypeResort, TypeHomestay, TypeHostel, TypeGuesthouse, TypeCottage,
}

func IsValidAccommodationType(t string) bool {
	for _, v := range AccommodationTypes {
		if v == t {
			return true
		}
	}
	return false
}

type Hotel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"size:255;not null" json:"name"`
	Slug string `gorm:"size:255;uniqueIndex;not null" json:"slug"`

	CategoryID uint  `gorm:"index;column:category_id" json:"category_id"`
	StateID    *uint `gorm:"index;column:state_id" json:"state_id,omitempty"`

	Location    string `gorm:"size:255" json:"location"`
	Address     string `gorm:"type:text" json:"address"`
	Phone       string `gorm:"size:20" json:"phone"`
	Description string `gorm:"type:text" json:"description"`

	CheckInTime  string `gorm:"size:32;column:check_in_time" json:"check_in_time"`
	CheckOutTime string `gorm:"size:32;column:check_out_time" json:"check_out_time"`

	TotalRooms     int `gorm:"column:total_rooms" json:"total_rooms"`
	AvailableRooms int `gorm:"column:available_rooms" json:"available_rooms"`

	PricePerNight *float64 `gorm:"column:price_per_night" json:"price_per_night,omitempty"`
	StarRating    *float64 `gorm:"column:star_rating" json:"star_rating,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	MetaTitle       *string `gorm:"size:255;column:meta_title" json:"meta_title,omitempty"`
	MetaDescription *string `gorm:"type:text;column:meta_description" json:"meta_description,omitempty"`
	MetaKeywords    *string `gorm:"type:text;column:meta_keywords" json:"meta_keywords,omitempty"`

	AccommodationType string `gorm:"size:32;index;column:accommodation_type" json:"accommodation_type"`

	// tent branch
	TentCapacity *int    `gorm:"column:tent_capacity" json:"tent_capacity,omitempty"`
	TentType     *string `gorm:"size:64;column:tent_type" json:"tent_type,omitempty"`

	// resort branch
	ResortCategory *string        `gorm:"size:64;column:resort_category" json:"resort_category,omitempty"`
	ResortFeatures datatypes.JSON `gorm:"column:resort_features" json:"resort_features,omitempty"`

	// homestay / hostel / guesthouse branches
	HomestayFeatures   datatypes.JSON `gorm:"column:homestay_features" json:"homestay_features,omitempty"`
	HostelFeatures     datatypes.JSON `gorm:"column:hostel_features" json:"hostel_features,omitempty"`
	GuesthouseFeatures datatypes.JSON `gorm:"column:guesthouse_features" json:"guesthouse_features,omitempty"`

	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	// Stored as bare filename; read paths prefix the public uploads base URL.
	FeaturedImage *string `gorm:"size:255;column:featured_image" json:"featured_image,omitempty"`

	IsActive bool `gorm:"column:is_active" json:"is_active"`

	State    State        `gorm:"foreignKey:StateID;references:ID" json:"state,omitempty"`
	Category Category     `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	Images   []HotelImage `gorm:"foreignKey:HotelID" json:"images,omitempty"`
	Rooms    []HotelRoom  `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
