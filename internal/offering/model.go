package offering

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("offering not found")
	ErrNameRequired  = errors.New("name is required")
	ErrInvalidPrice  = errors.New("price must not be negative")
	ErrInvalidLength = errors.New("duration must be positive")
)

// Offering is one service the salon sells (haircut, facial, ...). Bookings
// snapshot the offering name as free text; deleting or renaming an offering
// never touches existing bookings.
type Offering struct {
	ID              string
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	Category        string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Filter defines parameters for listing offerings.
type Filter struct {
	Category   string
	ActiveOnly bool
	Page       int
	PageSize   int
}
