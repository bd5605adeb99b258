package inquiry

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name    string
	Email   string
	Message string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Inquiry, error)
	GetByID(ctx context.Context, id string) (*Inquiry, error)
	List(ctx context.Context, filter Filter) ([]*Inquiry, int, error)
	Respond(ctx context.Context, id, response string) (*Inquiry, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Inquiry, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, ErrEmailRequired
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrMessageRequired
	}

	i := &Inquiry{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Message: strings.TrimSpace(req.Message),
	}

	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Inquiry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Inquiry, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Respond(ctx context.Context, id, response string) (*Inquiry, error) {
	if strings.TrimSpace(response) == "" {
		return nil, ErrMessageRequired
	}

	if err := s.repo.SetResponse(ctx, id, strings.TrimSpace(response)); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	// Check existence first
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
