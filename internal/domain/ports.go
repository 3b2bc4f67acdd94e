package domain

import "context"

type HotelRepository interface {
	Create(ctx context.Context, h NewHotel) (Hotel, error)
	GetAll(ctx context.Context) ([]Hotel, error)
	GetByID(ctx context.Context, id int64) (Hotel, error)
	Update(ctx context.Context, id int64, p HotelPatch) error
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, u NewUser) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, id int64, p UserPatch) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	Create(ctx context.Context, r NewRoom) (Room, error)
	GetAll(ctx context.Context) ([]Room, error)
	GetByID(ctx context.Context, id int64) (Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]Room, error)
	ListAvailableByHotel(ctx context.Context, hotelID int64) ([]Room, error)
	Update(ctx context.Context, id int64, p RoomPatch) error
	SetAvailability(ctx context.Context, id int64, available bool) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository owns the multi-statement booking workflows. Create,
// Transition and Delete each run as one transaction so the booking row and
// the room's availability flag cannot drift apart.
type BookingRepository interface {
	// Create inserts a confirmed booking and flips the room unavailable.
	// The flip is conditional on the room still being available; losing
	// that race returns ErrRoomUnavailable and writes nothing.
	Create(ctx context.Context, b Booking) (Booking, error)
	GetAll(ctx context.Context) ([]Booking, error)
	GetByID(ctx context.Context, id int64) (Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]Booking, error)
	ListByRoom(ctx context.Context, roomID int64) ([]Booking, error)
	// Transition moves the booking through the status machine and applies
	// the transition's room effect atomically.
	Transition(ctx context.Context, id int64, to BookingStatus) (Booking, error)
	// Delete removes the booking; a still-confirmed booking releases its
	// room in the same transaction.
	Delete(ctx context.Context, id int64) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
