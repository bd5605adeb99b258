package booking

import (
	"time"

	"github.com/velvetrow/salon-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("booking not found")
	ErrSlotTaken        = apperror.Conflict("time slot already booked")
	ErrServiceRequired  = apperror.Validation("service is required")
	ErrDateRequired     = apperror.Validation("date is required")
	ErrTimeSlotRequired = apperror.Validation("time slot is required")
	ErrUnknownTimeSlot  = apperror.Validation("time slot is not in the daily schedule")
	ErrInvalidStatus    = apperror.Validation("invalid booking status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid reports whether st is one of the known statuses.
func (st Status) IsValid() bool {
	switch st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking represents one confirmed appointment. Service is a free-text
// snapshot of the offering name at booking time, not a foreign key.
type Booking struct {
	ID             string
	CustomerID     string
	CustomerName   string
	CustomerEmail  string
	Date           time.Time // calendar date; time-of-day is carried by TimeSlot
	TimeSlot       string    // catalog label, e.g. "2:00 PM"
	Service        string
	Status         Status
	Contact        *string
	Notes          *string
	AlternatePhone *string
	CreatedAt      time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	CustomerID string
	Status     string
	Date       *time.Time
}
