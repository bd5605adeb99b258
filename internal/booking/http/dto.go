package http

import (
	"time"

	"github.com/velvetrow/salon-backend/internal/booking"
)

const dateLayout = "2006-01-02"

// TimeSlotResponse is one catalog entry in the availability view.
type TimeSlotResponse struct {
	ID       int    `json:"id"`
	Time     string `json:"time"`
	IsBooked bool   `json:"isBooked"`
}

// TimeSlotsResponse is the payload for GET /bookings/time-slots.
type TimeSlotsResponse struct {
	TimeSlots []TimeSlotResponse `json:"timeSlots"`
}

// AvailabilityResponse is the payload for GET /bookings/availability.
type AvailabilityResponse struct {
	BookedSlots []string `json:"bookedSlots"`
}

// CreateBookingRequest is the payload for POST /bookings. All three core
// fields are required; nothing is silently defaulted.
type CreateBookingRequest struct {
	ServiceType    string `json:"serviceType" binding:"required"`
	Date           string `json:"date" binding:"required"`
	TimeSlot       string `json:"timeSlot" binding:"required"`
	Contact        string `json:"contact"`
	Notes          string `json:"notes"`
	AlternatePhone string `json:"alternatePhone"`
}

// UpdateStatusRequest is the payload for PATCH /bookings/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BookingResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customerId"`
	CustomerName   string    `json:"customerName,omitempty"`
	ServiceType    string    `json:"serviceType"`
	Date           string    `json:"date"`
	TimeSlot       string    `json:"timeSlot"`
	Status         string    `json:"status"`
	Contact        *string   `json:"contact,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	AlternatePhone *string   `json:"alternatePhone,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		CustomerName:   b.CustomerName,
		ServiceType:    b.Service,
		Date:           b.Date.Format(dateLayout),
		TimeSlot:       b.TimeSlot,
		Status:         string(b.Status),
		Contact:        b.Contact,
		Notes:          b.Notes,
		AlternatePhone: b.AlternatePhone,
		CreatedAt:      b.CreatedAt,
	}
}

// BookingListResponse is the payload for GET /bookings.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func NewBookingListResponse(bookings []*booking.Booking) BookingListResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	return BookingListResponse{Bookings: items}
}
