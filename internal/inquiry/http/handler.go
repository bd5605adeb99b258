package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velvetrow/salon-backend/internal/inquiry"
	"github.com/velvetrow/salon-backend/internal/pkg/request"
	"github.com/velvetrow/salon-backend/internal/pkg/response"
)

type Handler struct {
	service inquiry.Service
}

func NewHandler(service inquiry.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := inquiry.CreateRequest{
		Name:    body.Name,
		Email:   body.Email,
		Message: body.Message,
	}

	i, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, inquiry.ErrNameRequired),
			errors.Is(err, inquiry.ErrEmailRequired),
			errors.Is(err, inquiry.ErrMessageRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create inquiry"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewResponse(i))
}

func (h *Handler) List(c *gin.Context) {
	var req ListInquiriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := inquiry.Filter{
		Unanswered: req.Unanswered,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	list, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list inquiries"})
		return
	}

	items := make([]InquiryResponse, len(list))
	for i, inq := range list {
		items[i] = NewResponse(inq)
	}

	resp := response.NewPageResponse(items, req.Page, req.PageSize, total)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Respond(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body RespondRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	i, err := h.service.Respond(c.Request.Context(), uri.ID, body.Response)
	if err != nil {
		switch {
		case errors.Is(err, inquiry.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
		case errors.Is(err, inquiry.ErrMessageRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to respond to inquiry"})
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(i))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, inquiry.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete inquiry"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
