package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velvetrow/salon-backend/internal/offering"
	"github.com/velvetrow/salon-backend/internal/pkg/request"
	"github.com/velvetrow/salon-backend/internal/pkg/response"
)

type Handler struct {
	service offering.Service
}

func NewHandler(service offering.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListOfferingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := offering.Filter{
		Category:   req.Category,
		ActiveOnly: req.ActiveOnly,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	list, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list offerings"})
		return
	}

	items := make([]OfferingResponse, len(list))
	for i, o := range list {
		items[i] = NewResponse(o)
	}

	resp := response.NewPageResponse(items, req.Page, req.PageSize, total)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	o, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, offering.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "offering not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get offering"})
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(o))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := offering.CreateRequest{
		Name:            body.Name,
		Description:     body.Description,
		Price:           body.Price,
		DurationMinutes: body.DurationMinutes,
		Category:        body.Category,
	}

	o, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, offering.ErrNameRequired),
			errors.Is(err, offering.ErrInvalidPrice),
			errors.Is(err, offering.ErrInvalidLength):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create offering"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewResponse(o))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := offering.UpdateRequest{
		Name:            body.Name,
		Description:     body.Description,
		Price:           body.Price,
		DurationMinutes: body.DurationMinutes,
		Category:        body.Category,
		IsActive:        body.IsActive,
	}

	o, err := h.service.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, offering.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "offering not found"})
		case errors.Is(err, offering.ErrNameRequired),
			errors.Is(err, offering.ErrInvalidPrice),
			errors.Is(err, offering.ErrInvalidLength):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update offering"})
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(o))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, offering.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "offering not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete offering"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
