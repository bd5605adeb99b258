package booking

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/velvetrow/salon-backend/internal/logger"
	"github.com/velvetrow/salon-backend/internal/notification"
)

// CreateRequest carries a customer's admission request for a slot.
type CreateRequest struct {
	CustomerID     string
	Service        string
	Date           time.Time
	TimeSlot       string
	Contact        string
	Notes          string
	AlternatePhone string
}

type Service interface {
	// Create is the only write path that creates a booking. Among concurrent
	// requests for the same (date, slot), exactly one succeeds; the rest get
	// ErrSlotTaken.
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	// TimeSlots returns the full daily catalog for a date, each slot annotated
	// with whether a non-cancelled booking holds it.
	TimeSlots(ctx context.Context, date time.Time) ([]SlotAvailability, error)
	// BookedSlots returns only the taken slot labels for a date.
	BookedSlots(ctx context.Context, date time.Time) ([]string, error)
	ListForCustomer(ctx context.Context, customerID string) ([]*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) (*Booking, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	notifier notification.Notifier
}

func NewService(repo Repository, notifier notification.Notifier) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if strings.TrimSpace(req.Service) == "" {
		return nil, ErrServiceRequired
	}
	if req.Date.IsZero() {
		return nil, ErrDateRequired
	}
	if strings.TrimSpace(req.TimeSlot) == "" {
		return nil, ErrTimeSlotRequired
	}
	if !IsCatalogSlot(req.TimeSlot) {
		return nil, ErrUnknownTimeSlot
	}

	b := &Booking{
		CustomerID: req.CustomerID,
		Date:       truncateToDate(req.Date),
		TimeSlot:   req.TimeSlot,
		Service:    strings.TrimSpace(req.Service),
		Status:     StatusPending,
	}
	if v := strings.TrimSpace(req.Contact); v != "" {
		b.Contact = &v
	}
	if v := strings.TrimSpace(req.Notes); v != "" {
		b.Notes = &v
	}
	if v := strings.TrimSpace(req.AlternatePhone); v != "" {
		b.AlternatePhone = &v
	}

	// Single-step admission: the insert itself is the authoritative check.
	// The unique index decides which concurrent request wins.
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// Fill the customer tag on the fresh record so callers and the
	// confirmation mail see the joined view.
	if full, err := s.repo.GetByID(ctx, b.ID); err == nil {
		b = full
	}

	s.notifyAdmitted(b)

	return b, nil
}

// notifyAdmitted sends the confirmation mail without blocking the admission
// response. Failure to notify never rolls back the booking.
func (s *service) notifyAdmitted(b *Booking) {
	if b.CustomerEmail == "" {
		return
	}

	msg := notification.BookingConfirmation{
		To:       b.CustomerEmail,
		Name:     b.CustomerName,
		Service:  b.Service,
		Date:     b.Date.Format("2006-01-02"),
		TimeSlot: b.TimeSlot,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.notifier.SendBookingConfirmation(ctx, msg); err != nil {
			logger.Log.WithError(err).WithField("booking_id", b.ID).
				Warn("booking confirmation mail failed")
		}
	}()
}

func (s *service) TimeSlots(ctx context.Context, date time.Time) ([]SlotAvailability, error) {
	if date.IsZero() {
		return nil, ErrDateRequired
	}

	taken, err := s.repo.ListByDate(ctx, truncateToDate(date))
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(taken))
	for _, b := range taken {
		booked[b.TimeSlot] = true
	}

	catalog := Slots()
	out := make([]SlotAvailability, len(catalog))
	for i, slot := range catalog {
		out[i] = SlotAvailability{
			ID:       slot.ID,
			Time:     slot.Time,
			IsBooked: booked[slot.Time],
		}
	}
	return out, nil
}

func (s *service) BookedSlots(ctx context.Context, date time.Time) ([]string, error) {
	slots, err := s.TimeSlots(ctx, date)
	if err != nil {
		return nil, err
	}

	booked := make([]string, 0)
	for _, slot := range slots {
		if slot.IsBooked {
			booked = append(booked, slot.Time)
		}
	}
	return booked, nil
}

func (s *service) ListForCustomer(ctx context.Context, customerID string) ([]*Booking, error) {
	return s.List(ctx, Filter{CustomerID: customerID})
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	bookings, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sortByDateAndSlot(bookings)
	return bookings, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, status string) (*Booking, error) {
	st := Status(status)
	if !st.IsValid() {
		return nil, ErrInvalidStatus
	}

	// Transition legality is deliberately not checked; any admin-chosen
	// status value is accepted.
	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// sortByDateAndSlot orders bookings by date ascending, then by the catalog
// position of their slot.
func sortByDateAndSlot(bookings []*Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		if !bookings[i].Date.Equal(bookings[j].Date) {
			return bookings[i].Date.Before(bookings[j].Date)
		}
		return SlotIndex(bookings[i].TimeSlot) < SlotIndex(bookings[j].TimeSlot)
	})
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
