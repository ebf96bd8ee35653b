package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/fittrack/goaltracker/internal/api/metrics"
	"github.com/fittrack/goaltracker/internal/core/service"
)

func newAuthContext(t *testing.T, header string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := service.NewJWTTokenService("secret", time.Hour)
	signed, err := tokens.Issue("user-42")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, c, rec := newAuthContext(t, "Bearer "+signed)

	called := false
	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		called = true
		if UserID(c) != "user-42" {
			t.Fatalf("expected user id in context, got %q", UserID(c))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := service.NewJWTTokenService("secret", time.Hour)
	e, c, rec := newAuthContext(t, "")

	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	tokens := service.NewJWTTokenService("secret", time.Hour)
	e, c, rec := newAuthContext(t, "Token abc")

	// Counters are process-global, so compare against a snapshot.
	missingBefore := testutil.ToFloat64(metrics.TokenVerificationsTotal.WithLabelValues("missing"))
	malformedBefore := testutil.ToFloat64(metrics.TokenVerificationsTotal.WithLabelValues("malformed_header"))

	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	// A present-but-malformed header must not be counted as absent.
	if got := testutil.ToFloat64(metrics.TokenVerificationsTotal.WithLabelValues("malformed_header")); got != malformedBefore+1 {
		t.Fatalf("expected malformed_header counter to increment, got %v (was %v)", got, malformedBefore)
	}
	if got := testutil.ToFloat64(metrics.TokenVerificationsTotal.WithLabelValues("missing")); got != missingBefore {
		t.Fatalf("expected missing counter unchanged, got %v (was %v)", got, missingBefore)
	}
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	tokens := service.NewJWTTokenService("secret", time.Hour)
	e, c, rec := newAuthContext(t, "Bearer not-a-token")

	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	// Sign a token that expired an hour ago with the right secret.
	claims := jwt.RegisteredClaims{
		Subject:   "user-42",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	tokens := service.NewJWTTokenService("secret", time.Hour)
	e, c, rec := newAuthContext(t, "Bearer "+signed)

	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
