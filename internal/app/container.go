package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velvetrow/salon-backend/internal/api"
	"github.com/velvetrow/salon-backend/internal/auth"
	"github.com/velvetrow/salon-backend/internal/booking"
	"github.com/velvetrow/salon-backend/internal/inquiry"
	"github.com/velvetrow/salon-backend/internal/notification"
	"github.com/velvetrow/salon-backend/internal/offering"
	"github.com/velvetrow/salon-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	DBPool         *pgxpool.Pool
	JWTSecret      string
	JWTTTL         time.Duration
	AuthCookieName string
	BcryptCost     int
	Notifier       notification.Notifier
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container. Every
// component gets its dependencies handed in here; nothing reaches for global
// state.
func NewContainer(cfg Config) *Container {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notification.NewNopNotifier()
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, notifier)

	// Offering Module
	offeringRepo := offering.NewPgxRepository(cfg.DBPool)
	offeringService := offering.NewService(offeringRepo)

	// Inquiry Module
	inquiryRepo := inquiry.NewPgxRepository(cfg.DBPool)
	inquiryService := inquiry.NewService(inquiryRepo)

	// API Router Config
	routerParams := api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		AuthCookieName:  cfg.AuthCookieName,
		UserService:     userService,
		BookingService:  bookingService,
		OfferingService: offeringService,
		InquiryService:  inquiryService,
		JWTManager:      jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
