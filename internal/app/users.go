package app

import (
	"context"
	"errors"
	"fmt"

	"hotelbook/internal/domain"
)

type UserService struct {
	repo domain.UserRepository
}

func NewUserService(r domain.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Create rejects duplicate emails by exact match before inserting; the
// unique index catches whatever slips between check and insert.
func (s *UserService) Create(ctx context.Context, u domain.NewUser) (domain.User, error) {
	if _, err := s.repo.GetByEmail(ctx, u.Email); err == nil {
		return domain.User{}, fmt.Errorf("user with this email %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}
	created, err := s.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.User{}, fmt.Errorf("user with this email %w", domain.ErrConflict)
		}
		return domain.User{}, err
	}
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, fmt.Errorf("user %w", domain.ErrNotFound)
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *UserService) Update(ctx context.Context, id int64, p domain.UserPatch) error {
	if p.Email != nil {
		if other, err := s.repo.GetByEmail(ctx, *p.Email); err == nil && other.ID != id {
			return fmt.Errorf("user with this email %w", domain.ErrConflict)
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
	}
	if err := s.repo.Update(ctx, id, p); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("user %w", domain.ErrNotFound)
		case errors.Is(err, domain.ErrConflict):
			return fmt.Errorf("user with this email %w", domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user %w", domain.ErrNotFound)
		}
		return err
	}
	return nil
}
