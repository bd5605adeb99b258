package offering

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Category        string
}

type UpdateRequest struct {
	Name            *string
	Description     *string
	Price           *float64
	DurationMinutes *int
	Category        *string
	IsActive        *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Offering, error)
	GetByID(ctx context.Context, id string) (*Offering, error)
	List(ctx context.Context, filter Filter) ([]*Offering, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Offering, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Offering, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = 60
	}
	if duration < 0 {
		return nil, ErrInvalidLength
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "General"
	}

	o := &Offering{
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: duration,
		Category:        category,
		IsActive:        true,
	}
	if d := strings.TrimSpace(req.Description); d != "" {
		o.Description = &d
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Offering, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Offering, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Offering, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		o.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		if d := strings.TrimSpace(*req.Description); d != "" {
			o.Description = &d
		} else {
			o.Description = nil
		}
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		o.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, ErrInvalidLength
		}
		o.DurationMinutes = *req.DurationMinutes
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) != "" {
		o.Category = strings.TrimSpace(*req.Category)
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	// Check existence first
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
