package app

import (
	"context"
	"errors"
	"fmt"

	"hotelbook/internal/adapters/observability"
	"hotelbook/internal/domain"
)

// BookingService runs the cross-entity booking workflows: create (validate
// user/room/dates, price the stay, hold the room), status transitions,
// cancellation and deletion. The repository keeps each workflow's two
// writes atomic; this layer owns validation order and cache invalidation.
type BookingService struct {
	bookings domain.BookingRepository
	rooms    domain.RoomRepository
	users    domain.UserRepository
	cache    domain.Cache
}

func NewBookingService(b domain.BookingRepository, r domain.RoomRepository, u domain.UserRepository, c domain.Cache) *BookingService {
	return &BookingService{bookings: b, rooms: r, users: u, cache: c}
}

func (s *BookingService) Create(ctx context.Context, nb domain.NewBooking) (domain.Booking, error) {
	if _, err := s.users.GetByID(ctx, nb.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Booking{}, fmt.Errorf("user %w", domain.ErrNotFound)
		}
		return domain.Booking{}, err
	}
	room, err := s.rooms.GetByID(ctx, nb.RoomID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Booking{}, fmt.Errorf("room %w", domain.ErrNotFound)
		}
		return domain.Booking{}, err
	}
	nights, err := nb.Nights()
	if err != nil {
		return domain.Booking{}, err
	}
	if !room.IsAvailable {
		// early answer; the conditional hold inside the transaction is
		// what actually decides the race
		observability.ObserveBooking("rejected")
		return domain.Booking{}, domain.ErrRoomUnavailable
	}

	b := domain.Booking{
		UserID:       nb.UserID,
		RoomID:       nb.RoomID,
		CheckInDate:  nb.CheckInDate,
		CheckOutDate: nb.CheckOutDate,
		TotalPrice:   float64(nights) * room.PricePerNight,
		Status:       domain.StatusConfirmed,
	}
	created, err := s.bookings.Create(ctx, b)
	if err != nil {
		if errors.Is(err, domain.ErrRoomUnavailable) {
			observability.ObserveBooking("rejected")
		}
		return domain.Booking{}, err
	}
	_ = s.cache.Del(ctx, availableRoomsKey(room.HotelID))
	observability.ObserveBooking("created")
	return created, nil
}

func (s *BookingService) Get(ctx context.Context, id int64) (domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Booking{}, fmt.Errorf("booking %w", domain.ErrNotFound)
		}
		return domain.Booking{}, err
	}
	return b, nil
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.GetAll(ctx)
}

func (s *BookingService) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user %w", domain.ErrNotFound)
		}
		return nil, err
	}
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) ListByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("room %w", domain.ErrNotFound)
		}
		return nil, err
	}
	return s.bookings.ListByRoom(ctx, roomID)
}

// SetStatus drives the status machine; transitions carry their own room
// side effects, so a direct status update can no longer strand the
// availability flag.
func (s *BookingService) SetStatus(ctx context.Context, id int64, status domain.BookingStatus) (domain.Booking, error) {
	if !status.Valid() {
		return domain.Booking{}, domain.ErrInvalidStatus
	}
	updated, err := s.bookings.Transition(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Booking{}, fmt.Errorf("booking %w", domain.ErrNotFound)
		}
		return domain.Booking{}, err
	}
	s.invalidateRoom(ctx, updated.RoomID)
	return updated, nil
}

func (s *BookingService) Cancel(ctx context.Context, id int64) (domain.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}
	if b.Status == domain.StatusCancelled {
		return domain.Booking{}, domain.ErrAlreadyCancelled
	}
	updated, err := s.bookings.Transition(ctx, id, domain.StatusCancelled)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			// lost a race against a concurrent cancel
			return domain.Booking{}, domain.ErrAlreadyCancelled
		}
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Booking{}, fmt.Errorf("booking %w", domain.ErrNotFound)
		}
		return domain.Booking{}, err
	}
	s.invalidateRoom(ctx, updated.RoomID)
	observability.ObserveBooking("cancelled")
	return updated, nil
}

func (s *BookingService) Delete(ctx context.Context, id int64) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("booking %w", domain.ErrNotFound)
		}
		return err
	}
	s.invalidateRoom(ctx, b.RoomID)
	observability.ObserveBooking("deleted")
	return nil
}

// invalidateRoom drops the available-rooms cache entry for the hotel the
// room belongs to. Best effort: a stale list expires with its TTL anyway.
func (s *BookingService) invalidateRoom(ctx context.Context, roomID int64) {
	rm, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return
	}
	_ = s.cache.Del(ctx, availableRoomsKey(rm.HotelID))
}
