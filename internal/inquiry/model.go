package inquiry

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("inquiry not found")
	ErrNameRequired    = errors.New("name is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrMessageRequired = errors.New("message is required")
)

// Inquiry is a customer question or piece of feedback. Anyone may submit one;
// admins answer.
type Inquiry struct {
	ID          string
	Name        string
	Email       string
	Message     string
	Response    *string
	RespondedAt *time.Time
	CreatedAt   time.Time
}

// Filter defines parameters for listing inquiries.
type Filter struct {
	Unanswered bool
	Page       int
	PageSize   int
}
