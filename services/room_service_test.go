package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism-backend/models"
)

func TestRoomService_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	hotels := NewHotelService(db)
	rooms := NewRoomService(db)

	hotelID, err := hotels.CreateHotel(validInput(), nil)
	require.NoError(t, err)

	room := models.HotelRoom{
		HotelID:         hotelID,
		RoomType:        "Deluxe",
		TotalRooms:      6,
		AvailableRooms:  4,
		PricePeakSeason: 4500,
		PriceOffSeason:  3000,
	}
	require.NoError(t, rooms.Create(&room))
	assert.NotZero(t, room.ID)

	got, err := rooms.ListByHotel(hotelID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Deluxe", got[0].RoomType)
}

func TestRoomService_CreateRejectsMissingHotel(t *testing.T) {
	db := setupTestDB(t)
	rooms := NewRoomService(db)

	err := rooms.Create(&models.HotelRoom{HotelID: 404, RoomType: "Deluxe"})
	assert.ErrorIs(t, err, ErrHotelNotFound)

	_, err = rooms.ListByHotel(404)
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestRoomService_Update(t *testing.T) {
	db := setupTestDB(t)
	hotels := NewHotelService(db)
	rooms := NewRoomService(db)

	hotelID, err := hotels.CreateHotel(validInput(), nil)
	require.NoError(t, err)
	room := models.HotelRoom{HotelID: hotelID, RoomType: "Standard", TotalRooms: 3, AvailableRooms: 3}
	require.NoError(t, rooms.Create(&room))

	err = rooms.Update(hotelID, room.ID, map[string]interface{}{
		"room_type":       "Superior",
		"available_rooms": 2,
		"hotel_id":        999, // must be stripped
	})
	require.NoError(t, err)

	var reloaded models.HotelRoom
	require.NoError(t, db.First(&reloaded, room.ID).Error)
	assert.Equal(t, "Superior", reloaded.RoomType)
	assert.Equal(t, 2, reloaded.AvailableRooms)
	assert.Equal(t, hotelID, reloaded.HotelID)

	assert.ErrorIs(t, rooms.Update(hotelID, 9999, map[string]interface{}{"room_type": "X"}), ErrRoomNotFound)
}

func TestRoomService_Delete(t *testing.T) {
	db := setupTestDB(t)
	hotels := NewHotelService(db)
	rooms := NewRoomService(db)

	hotelID, err := hotels.CreateHotel(validInput(), nil)
	require.NoError(t, err)
	room := models.HotelRoom{HotelID: hotelID, RoomType: "Standard"}
	require.NoError(t, rooms.Create(&room))

	// scoped: wrong parent does not delete
	assert.ErrorIs(t, rooms.Delete(hotelID+1, room.ID), ErrRoomNotFound)

	require.NoError(t, rooms.Delete(hotelID, room.ID))
	assert.ErrorIs(t, rooms.Delete(hotelID, room.ID), ErrRoomNotFound)
}
