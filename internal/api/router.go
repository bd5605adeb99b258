package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/velvetrow/salon-backend/internal/auth"
	"github.com/velvetrow/salon-backend/internal/booking"
	bookingHttp "github.com/velvetrow/salon-backend/internal/booking/http"
	"github.com/velvetrow/salon-backend/internal/inquiry"
	inquiryHttp "github.com/velvetrow/salon-backend/internal/inquiry/http"
	"github.com/velvetrow/salon-backend/internal/offering"
	offeringHttp "github.com/velvetrow/salon-backend/internal/offering/http"
	"github.com/velvetrow/salon-backend/internal/user"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	AuthCookieName  string
	UserService     user.Service
	BookingService  booking.Service
	OfferingService offering.Service
	InquiryService  inquiry.Service
	JWTManager      *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true // auth travels in a cookie
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates the JWT cookie and stores the identity in the
	// request context once.
	authMiddleware := auth.AuthRequired(cfg.JWTManager, cfg.AuthCookieName)
	// adminMiddleware: Further checks the authenticated identity's role.
	adminMiddleware := RequireAdmin()

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager, cfg.AuthCookieName, cfg.IsProduction)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	offeringHandler := offeringHttp.NewHandler(cfg.OfferingService)
	inquiryHandler := inquiryHttp.NewHandler(cfg.InquiryService)

	// Auth endpoints, throttled to blunt credential stuffing.
	authLimiter := NewRateLimiter("20-M")
	authGroup := r.Group("/auth")
	authGroup.Use(authLimiter)
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
	}

	usersGroup := r.Group("/users")
	usersGroup.Use(authMiddleware)
	{
		usersGroup.GET("/me", authHandler.Me)
	}

	root := &r.RouterGroup
	bookingHttp.RegisterRoutes(root, bookingHandler, authMiddleware, adminMiddleware)
	offeringHttp.RegisterRoutes(root, offeringHandler, authMiddleware, adminMiddleware)
	inquiryHttp.RegisterRoutes(root, inquiryHandler, authMiddleware, adminMiddleware)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
