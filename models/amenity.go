package models

import "time"

// Amenity is a lookup row backing GET /api/hotels/amenities/:type.
// Rows are keyed by the accommodation type they apply to.
type Amenity struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AccommodationType string `gorm:"size:32;index;not null;column:accommodation_type" json:"accommodation_type"`
	Name              string `gorm:"size:100;not null" json:"name"`
	Icon              string `gorm:"size:64" json:"icon,omitempty"`

	CreatedAt time.Time `json:"-"`
}
