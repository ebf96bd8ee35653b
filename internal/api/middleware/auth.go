package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fittrack/goaltracker/internal/api/metrics"
	"github.com/fittrack/goaltracker/internal/core/domain"
	"github.com/fittrack/goaltracker/internal/core/ports"
)

// userIDKey is the echo context key the auth gate stores the subject under.
const userIDKey = "user_id"

// Auth verifies the bearer token and injects the authenticated user id into
// the request context. Verification is self-contained, no store round-trip,
// so a stolen token stays valid until its expiry.
func Auth(tokens ports.TokenVerifier, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				// The three failure kinds are indistinguishable to the
				// client but distinguishable here.
				reason := "malformed"
				switch {
				case errors.Is(err, domain.ErrTokenExpired):
					reason = "expired"
				case errors.Is(err, domain.ErrTokenSignatureInvalid):
					reason = "bad_signature"
				}
				metrics.TokenVerificationsTotal.WithLabelValues(reason).Inc()
				log.Debug().
					Str("reason", reason).
					Str("path", c.Path()).
					Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id set by Auth, or "" when the
// middleware has not run on this request.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}
