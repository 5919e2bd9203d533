// middleware/rate_limiter.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/ediestyles/closet_backend/models"
)

type endpointLimit struct {
	limit rate.Limit
	burst int
}

// RateLimiter applies a per-IP token bucket with per-endpoint overrides.
type RateLimiter struct {
	ips            map[string]map[string]*rate.Limiter
	mu             sync.RWMutex
	defaultLimit   rate.Limit
	defaultBurst   int
	endpointLimits map[string]endpointLimit
}

func NewRateLimiter() *RateLimiter {
	limiter := &RateLimiter{
		ips:            make(map[string]map[string]*rate.Limiter),
		defaultLimit:   rate.Every(100 * time.Millisecond), // 10 requests per second
		defaultBurst:   20,
		endpointLimits: make(map[string]endpointLimit),
	}

	// Login endpoint gets a stricter budget to blunt credential stuffing.
	limiter.endpointLimits["/api/auth"] = endpointLimit{
		limit: rate.Every(2 * time.Second),
		burst: 5,
	}

	// Uploads trigger external image processing, so keep them modest.
	limiter.endpointLimits["/api/files"] = endpointLimit{
		limit: rate.Every(time.Second),
		burst: 10,
	}

	return limiter
}

func (rl *RateLimiter) getLimiter(ip, path string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	byPath, ok := rl.ips[ip]
	if !ok {
		byPath = make(map[string]*rate.Limiter)
		rl.ips[ip] = byPath
	}

	key := ""
	limit := rl.defaultLimit
	burst := rl.defaultBurst
	for prefix, el := range rl.endpointLimits {
		if len(path) >= len(prefix) && path[:len(prefix)] == prefix {
			key = prefix
			limit = el.limit
			burst = el.burst
			break
		}
	}

	limiter, ok := byPath[key]
	if !ok {
		limiter = rate.NewLimiter(limit, burst)
		byPath[key] = limiter
	}
	return limiter
}

// RateLimit returns the echo middleware enforcing the limiter.
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := rl.getLimiter(c.RealIP(), c.Request().URL.Path)
			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, models.Response{
					Status:  http.StatusTooManyRequests,
					Message: "Too many requests, please try again later",
				})
			}
			return next(c)
		}
	}
}
