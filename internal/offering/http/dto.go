package http

import (
	"time"

	"github.com/velvetrow/salon-backend/internal/offering"
	"github.com/velvetrow/salon-backend/internal/pkg/request"
)

// ListOfferingsRequest defines query parameters for listing offerings.
type ListOfferingsRequest struct {
	request.ListParams
	Category   string `form:"category"`
	ActiveOnly bool   `form:"active_only"`
}

type OfferingResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	Category        string    `json:"category"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func NewResponse(o *offering.Offering) OfferingResponse {
	return OfferingResponse{
		ID:              o.ID,
		Name:            o.Name,
		Description:     o.Description,
		Price:           o.Price,
		DurationMinutes: o.DurationMinutes,
		Category:        o.Category,
		IsActive:        o.IsActive,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

type CreateRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"min=0"`
	DurationMinutes int     `json:"durationMinutes" binding:"omitempty,min=1"`
	Category        string  `json:"category"`
}

type UpdateRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price" binding:"omitempty,min=0"`
	DurationMinutes *int     `json:"durationMinutes" binding:"omitempty,min=1"`
	Category        *string  `json:"category"`
	IsActive        *bool    `json:"isActive"`
}
