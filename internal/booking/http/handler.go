package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/velvetrow/salon-backend/internal/auth"
	"github.com/velvetrow/salon-backend/internal/booking"
	"github.com/velvetrow/salon-backend/internal/pkg/request"
	"github.com/velvetrow/salon-backend/internal/pkg/response"
	"github.com/velvetrow/salon-backend/internal/user"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// parseDateQuery reads and validates the required date query parameter.
func parseDateQuery(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return time.Time{}, false
	}

	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

// TimeSlots handles GET /bookings/time-slots. Unauthenticated by design:
// slot occupancy does not leak who booked.
func (h *Handler) TimeSlots(c *gin.Context) {
	date, ok := parseDateQuery(c)
	if !ok {
		return
	}

	slots, err := h.service.TimeSlots(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]TimeSlotResponse, len(slots))
	for i, s := range slots {
		items[i] = TimeSlotResponse{ID: s.ID, Time: s.Time, IsBooked: s.IsBooked}
	}

	c.JSON(http.StatusOK, TimeSlotsResponse{TimeSlots: items})
}

// Availability handles GET /bookings/availability, the unauthenticated
// booked-slots variant.
func (h *Handler) Availability(c *gin.Context) {
	date, ok := parseDateQuery(c)
	if !ok {
		return
	}

	booked, err := h.service.BookedSlots(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{BookedSlots: booked})
}

// Create handles POST /bookings.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}

	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	req := booking.CreateRequest{
		CustomerID:     identity.UserID,
		Service:        body.ServiceType,
		Date:           date,
		TimeSlot:       body.TimeSlot,
		Contact:        body.Contact,
		Notes:          body.Notes,
		AlternatePhone: body.AlternatePhone,
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// List handles GET /bookings. Customers see only their own records; staff may
// list everything, optionally narrowed by query filters.
func (h *Handler) List(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	filter := booking.Filter{CustomerID: identity.UserID}

	isStaff := identity.Role == string(user.RoleAdmin) || identity.Role == string(user.RoleEmployee)
	if isStaff {
		filter.CustomerID = c.Query("customer_id")
		filter.Status = c.Query("status")
		if v := c.Query("date"); v != "" {
			d, err := time.Parse(dateLayout, v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
				return
			}
			filter.Date = &d
		}
	}

	bookings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingListResponse(bookings))
}

// UpdateStatus handles PATCH /bookings/:id/status (admin only).
func (h *Handler) UpdateStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var body UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), uri.ID, body.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Delete handles DELETE /bookings/:id (admin only). Unconditional; does not
// cascade.
func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
