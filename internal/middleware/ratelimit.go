package middleware

import (
	"time"

	"quiz-relay/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit throttles callers per IP. A nil storage keeps counters in memory.
// Max <= 0 disables throttling.
func RateLimit(max int, expiration time.Duration, storage fiber.Storage) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}
	if expiration <= 0 {
		expiration = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return domain.NewError(domain.CodeRateLimited, domain.MsgTooManyRequests, nil)
		},
		Storage: storage,
	})
}
