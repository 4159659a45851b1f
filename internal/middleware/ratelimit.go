package middleware

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimiter builds a per-client-IP rate limiting middleware backed
// by an in-memory store.
func NewRateLimiter(logger *slog.Logger, requestsPerMinute int) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(fmt.Sprintf("%d-M", requestsPerMinute))
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit format: %w", err)
	}
	store := memory.NewStore()
	instance := limiter.New(store, rate)
	logger.Info("rate limiter configured", "requests_per_minute", requestsPerMinute)
	return mgin.NewMiddleware(instance), nil
}
