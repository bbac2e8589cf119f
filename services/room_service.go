package services

import (
	"errors"

	"tourism-backend/models"

	"gorm.io/gorm"
)

var ErrRoomNotFound = errors.New("room_not_found")

// RoomService handles the room sub-resource under an accommodation.
// Room counts are independent of the parent hotel's aggregate.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) hotelExists(hotelID uint) error {
	var count int64
	if err := s.DB.Model(&models.Hotel{}).Where("id = ?", hotelID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrHotelNotFound
	}
	return nil
}

func (s *RoomService) ListByHotel(hotelID uint) ([]models.HotelRoom, error) {
	if err := s.hotelExists(hotelID); err != nil {
		return nil, err
	}
	var rooms []models.HotelRoom
	err := s.DB.Where("hotel_id = ?", hotelID).Order("id ASC").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) Create(room *models.HotelRoom) error {
	if err := s.hotelExists(room.HotelID); err != nil {
		return err
	}
	return s.DB.Create(room).Error
}

func (s *RoomService) Update(hotelID, roomID uint, updates map[string]interface{}) error {
	// keep identity and bookkeeping columns out of caller control
	delete(updates, "id")
	delete(updates, "hotel_id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	res := s.DB.Model(&models.HotelRoom{}).
		Where("id = ? AND hotel_id = ?", roomID, hotelID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (s *RoomService) Delete(hotelID, roomID uint) error {
	res := s.DB.Where("id = ? AND hotel_id = ?", roomID, hotelID).Delete(&models.HotelRoom{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
