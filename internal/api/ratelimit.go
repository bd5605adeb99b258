package api

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/velvetrow/salon-backend/internal/logger"
)

// NewRateLimiter builds a per-client-IP rate limit middleware from a
// formatted rate like "10-M" (10 requests per minute). Backed by an in-memory
// store; limits reset on process restart.
func NewRateLimiter(formatted string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		// Rates are compile-time constants; a bad one is a programming error.
		logger.Log.Fatalf("invalid rate %q: %v", formatted, err)
	}

	store := memory.NewStore()
	return mgin.NewMiddleware(limiter.New(store, rate))
}
