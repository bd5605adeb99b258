package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/inquiries")

	// === Public Routes ===
	// Visitors may ask questions without an account.
	group.POST("", h.Create)

	// === Administration Routes ===
	adminGroup := group.Group("")
	adminGroup.Use(authMiddleware, adminMiddleware)
	{
		adminGroup.GET("", h.List)
		adminGroup.POST("/:id/response", h.Respond)
		adminGroup.DELETE("/:id", h.Delete)
	}
}
