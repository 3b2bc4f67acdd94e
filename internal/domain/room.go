package domain

import "time"

type Room struct {
	ID            int64     `json:"id"`
	HotelID       int64     `json:"hotel_id"`
	RoomNumber    string    `json:"room_number"`
	RoomType      string    `json:"room_type"`
	PricePerNight float64   `json:"price_per_night"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewRoom uses a pointer for the price so a legitimate 0.0 still passes
// the required check.
type NewRoom struct {
	HotelID       int64    `json:"hotel_id" validate:"required"`
	RoomNumber    string   `json:"room_number" validate:"required"`
	RoomType      string   `json:"room_type" validate:"required"`
	PricePerNight *float64 `json:"price_per_night" validate:"required,gte=0"`
	IsAvailable   *bool    `json:"is_available"`
}

type RoomPatch struct {
	HotelID       *int64   `json:"hotel_id"`
	RoomNumber    *string  `json:"room_number"`
	RoomType      *string  `json:"room_type"`
	PricePerNight *float64 `json:"price_per_night" validate:"omitempty,gte=0"`
	IsAvailable   *bool    `json:"is_available"`
}

func (p RoomPatch) Empty() bool {
	return p.HotelID == nil && p.RoomNumber == nil && p.RoomType == nil &&
		p.PricePerNight == nil && p.IsAvailable == nil
}
