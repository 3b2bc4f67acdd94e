package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelbook/internal/domain"
)

type RoomService struct {
	rooms  domain.RoomRepository
	hotels domain.HotelRepository
	cache  domain.Cache
	ttl    time.Duration
}

func NewRoomService(rooms domain.RoomRepository, hotels domain.HotelRepository, c domain.Cache, ttl time.Duration) *RoomService {
	return &RoomService{rooms: rooms, hotels: hotels, cache: c, ttl: ttl}
}

func (s *RoomService) Create(ctx context.Context, nr domain.NewRoom) (domain.Room, error) {
	if _, err := s.hotels.GetByID(ctx, nr.HotelID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Room{}, fmt.Errorf("hotel %w", domain.ErrNotFound)
		}
		return domain.Room{}, err
	}
	rm, err := s.rooms.Create(ctx, nr)
	if err != nil {
		return domain.Room{}, err
	}
	_ = s.cache.Del(ctx, availableRoomsKey(rm.HotelID))
	return rm, nil
}

func (s *RoomService) Get(ctx context.Context, id int64) (domain.Room, error) {
	rm, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Room{}, fmt.Errorf("room %w", domain.ErrNotFound)
		}
		return domain.Room{}, err
	}
	return rm, nil
}

func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.GetAll(ctx)
}

func (s *RoomService) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("hotel %w", domain.ErrNotFound)
		}
		return nil, err
	}
	return s.rooms.ListByHotel(ctx, hotelID)
}

func (s *RoomService) ListAvailableByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("hotel %w", domain.ErrNotFound)
		}
		return nil, err
	}
	key := availableRoomsKey(hotelID)
	var cached []domain.Room
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}
	out, err := s.rooms.ListAvailableByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, out, int(s.ttl.Seconds()))
	return out, nil
}

func (s *RoomService) Update(ctx context.Context, id int64, p domain.RoomPatch) error {
	rm, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.HotelID != nil && *p.HotelID != rm.HotelID {
		if _, err := s.hotels.GetByID(ctx, *p.HotelID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("hotel %w", domain.ErrNotFound)
			}
			return err
		}
	}
	if err := s.rooms.Update(ctx, id, p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("room %w", domain.ErrNotFound)
		}
		return err
	}
	_ = s.cache.Del(ctx, availableRoomsKey(rm.HotelID))
	if p.HotelID != nil {
		_ = s.cache.Del(ctx, availableRoomsKey(*p.HotelID))
	}
	return nil
}

func (s *RoomService) SetAvailability(ctx context.Context, id int64, available bool) error {
	rm, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.rooms.SetAvailability(ctx, id, available); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("room %w", domain.ErrNotFound)
		}
		return err
	}
	_ = s.cache.Del(ctx, availableRoomsKey(rm.HotelID))
	return nil
}

func (s *RoomService) Delete(ctx context.Context, id int64) error {
	rm, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.rooms.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("room %w", domain.ErrNotFound)
		}
		return err
	}
	_ = s.cache.Del(ctx, availableRoomsKey(rm.HotelID))
	return nil
}
