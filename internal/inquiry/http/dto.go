package http

import (
	"time"

	"github.com/velvetrow/salon-backend/internal/inquiry"
	"github.com/velvetrow/salon-backend/internal/pkg/request"
)

// ListInquiriesRequest defines query parameters for listing inquiries.
type ListInquiriesRequest struct {
	request.ListParams
	Unanswered bool `form:"unanswered"`
}

type InquiryResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Message     string     `json:"message"`
	Response    *string    `json:"response,omitempty"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func NewResponse(i *inquiry.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:          i.ID,
		Name:        i.Name,
		Email:       i.Email,
		Message:     i.Message,
		Response:    i.Response,
		RespondedAt: i.RespondedAt,
		CreatedAt:   i.CreatedAt,
	}
}

type CreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type RespondRequest struct {
	Response string `json:"response" binding:"required"`
}
