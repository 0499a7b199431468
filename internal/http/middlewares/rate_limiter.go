package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

type window struct {
	count int
	start time.Time
}

// RateLimiter allows limit requests per client IP in each fixed window.
// Rejected requests get 429 and a Retry-After header.
func RateLimiter(limit int, size time.Duration) echo.MiddlewareFunc {
	var (
		mu      sync.Mutex
		clients = make(map[string]*window)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := c.RealIP()

			mu.Lock()
			w, ok := clients[key]
			if !ok || now.Sub(w.start) >= size {
				w = &window{start: now}
				clients[key] = w
			}

			if w.count >= limit {
				retryAfter := w.start.Add(size).Sub(now)
				mu.Unlock()

				seconds := int(retryAfter.Seconds()) + 1
				c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			w.count++
			mu.Unlock()

			return next(c)
		}
	}
}
