package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	// === Public Routes ===
	// Availability is intentionally unauthenticated; it exposes occupancy,
	// not identity.
	group.GET("/time-slots", h.TimeSlots)
	group.GET("/availability", h.Availability)

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
	}

	// === Administration Routes ===
	adminGroup := group.Group("")
	adminGroup.Use(adminMiddleware)
	{
		adminGroup.PATCH("/:id/status", h.UpdateStatus)
		adminGroup.DELETE("/:id", h.Delete)
	}
}
