package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelbook/internal/domain"
)

type HotelService struct {
	repo  domain.HotelRepository
	cache domain.Cache
	ttl   time.Duration
}

func NewHotelService(r domain.HotelRepository, c domain.Cache, ttl time.Duration) *HotelService {
	return &HotelService{repo: r, cache: c, ttl: ttl}
}

func (s *HotelService) Create(ctx context.Context, h domain.NewHotel) (domain.Hotel, error) {
	return s.repo.Create(ctx, h)
}

func (s *HotelService) Get(ctx context.Context, id int64) (domain.Hotel, error) {
	key := hotelKey(id)
	var h domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &h); ok {
		return h, nil
	}
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Hotel{}, fmt.Errorf("hotel %w", domain.ErrNotFound)
		}
		return domain.Hotel{}, err
	}
	_ = s.cache.Set(ctx, key, h, int(s.ttl.Seconds()))
	return h, nil
}

func (s *HotelService) List(ctx context.Context) ([]domain.Hotel, error) {
	return s.repo.GetAll(ctx)
}

func (s *HotelService) Update(ctx context.Context, id int64, p domain.HotelPatch) error {
	if err := s.repo.Update(ctx, id, p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("hotel %w", domain.ErrNotFound)
		}
		return err
	}
	_ = s.cache.Del(ctx, hotelKey(id))
	return nil
}

func (s *HotelService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("hotel %w", domain.ErrNotFound)
		}
		return err
	}
	_ = s.cache.Del(ctx, hotelKey(id))
	_ = s.cache.Del(ctx, availableRoomsKey(id))
	return nil
}
