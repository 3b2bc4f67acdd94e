package domain

import "time"

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// RoomEffect is what a status transition does to the booked room's
// availability flag. The storage layer applies it in the same transaction
// as the status change.
type RoomEffect int

const (
	RoomKeep    RoomEffect = iota
	RoomRelease            // availability -> true
	RoomAcquire            // availability -> false, conditional on it being true
)

// Transition returns the room side effect of moving from s to "to".
// A confirmed booking holds its room; leaving confirmed releases it, and
// reopening a cancelled or completed booking has to take the room back.
func (s BookingStatus) Transition(to BookingStatus) (RoomEffect, error) {
	if !to.Valid() {
		return RoomKeep, ErrInvalidStatus
	}
	switch {
	case s == StatusConfirmed && to == StatusCancelled:
		return RoomRelease, nil
	case s == StatusConfirmed && to == StatusCompleted:
		return RoomRelease, nil
	case s == StatusCompleted && to == StatusCancelled:
		// leaving confirmed already released the room
		return RoomKeep, nil
	case (s == StatusCancelled || s == StatusCompleted) && to == StatusConfirmed:
		return RoomAcquire, nil
	}
	return RoomKeep, ErrInvalidTransition
}

type Booking struct {
	ID           int64         `json:"id"`
	UserID       int64         `json:"user_id"`
	RoomID       int64         `json:"room_id"`
	CheckInDate  string        `json:"check_in_date"`
	CheckOutDate string        `json:"check_out_date"`
	TotalPrice   float64       `json:"total_price"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type NewBooking struct {
	UserID       int64  `json:"user_id" validate:"required"`
	RoomID       int64  `json:"room_id" validate:"required"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

// Nights returns the whole-day span of the stay. A date that does not
// parse is ErrInvalidDateFormat; check-out not strictly after check-in is
// ErrInvalidDateRange.
func (b NewBooking) Nights() (int, error) {
	in, err := time.Parse(DateLayout, b.CheckInDate)
	if err != nil {
		return 0, ErrInvalidDateFormat
	}
	out, err := time.Parse(DateLayout, b.CheckOutDate)
	if err != nil {
		return 0, ErrInvalidDateFormat
	}
	n := int(out.Sub(in) / (24 * time.Hour))
	if n <= 0 {
		return 0, ErrInvalidDateRange
	}
	return n, nil
}
