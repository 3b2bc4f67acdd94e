package domain

import "time"

type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NewHotel struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
	Rating  *int   `json:"rating"`
}

// HotelPatch carries only the fields the client supplied; nil means "leave as is".
type HotelPatch struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Country *string `json:"country"`
	Rating  *int    `json:"rating"`
}

func (p HotelPatch) Empty() bool {
	return p.Name == nil && p.Address == nil && p.City == nil && p.Country == nil && p.Rating == nil
}
