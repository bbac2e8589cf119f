package models

import "time"

type HotelImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"created_at"`

	HotelID uint `gorm:"index;not null;column:hotel_id" json:"hotel_id"`

	// Bare filename under uploads/hotels.
	URL         string `gorm:"size:255;not null;column:url" json:"url"`
	AltText     string `gorm:"size:255;column:alt_text" json:"alt_text"`
	Description string `gorm:"type:text" json:"description"`
}
