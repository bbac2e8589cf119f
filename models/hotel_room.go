package models

import (
	"time"

	"gorm.io/gorm"
)

// HotelRoom is a per-property room category (not an individual bookable
// unit); its available/total counts are not reconciled against the
// parent hotel's aggregate.
type HotelRoom struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	HotelID uint `gorm:"index;not null;column:hotel_id" json:"hotel_id"`

	RoomType       string `gorm:"size:100;not null;column:room_type" json:"room_type"`
	TotalRooms     int    `gorm:"column:total_rooms" json:"total_rooms"`
	AvailableRooms int    `gorm:"column:available_rooms" json:"available_rooms"`

	PricePeakSeason float64 `gorm:"column:price_peak_season" json:"price_peak_season"`
	PriceOffSeason  float64 `gorm:"column:price_off_season" json:"price_off_season"`
}
