package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fittrack/goaltracker/internal/api/metrics"
)

// AttemptLimiter abstracts the fixed-window counter (Redis).
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginRateLimit throttles credential-guessing by username and client IP.
// The limiter failing is not a reason to lock users out: on error the request
// is allowed through and the error logged.
func LoginRateLimit(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP() + ":" + peekUsername(c)

			ok, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				log.Warn().Err(err).Msg("login limiter unavailable, allowing request")
				return next(c)
			}
			if !ok {
				metrics.LoginAttemptsTotal.WithLabelValues("rate_limited").Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
			}
			return next(c)
		}
	}
}

// peekLimit caps how much of the body is buffered to extract the username.
// A login payload is a few dozen bytes; anything past the cap is left on the
// original reader for the handler's Bind.
const peekLimit = 4 << 10

// peekUsername reads the username from the JSON body without consuming it,
// so the handler's Bind still sees the full payload.
func peekUsername(c echo.Context) string {
	req := c.Request()
	head, err := io.ReadAll(io.LimitReader(req.Body, peekLimit))
	if err != nil {
		return ""
	}
	req.Body = io.NopCloser(io.MultiReader(bytes.NewReader(head), req.Body))

	// A streaming decode still yields the username when the payload is cut
	// off at the cap, as long as the field itself fits in the head.
	var payload struct {
		Username string `json:"username"`
	}
	_ = json.NewDecoder(bytes.NewReader(head)).Decode(&payload)
	return payload.Username
}
