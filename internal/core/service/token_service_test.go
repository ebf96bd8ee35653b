package service

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fittrack/goaltracker/internal/core/domain"
)

func TestJWTTokenService_RoundTrip(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)

	token, err := svc.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected three dot-separated segments, got %q", token)
	}

	subject, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if subject != "user-42" {
		t.Fatalf("expected subject user-42, got %q", subject)
	}
}

func TestJWTTokenService_Expired(t *testing.T) {
	svc := NewJWTTokenService("secret", 24*time.Hour)

	issued := time.Now().UTC()
	svc.now = func() time.Time { return issued }
	token, err := svc.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Still valid just before the 24h boundary.
	svc.now = func() time.Time { return issued.Add(24*time.Hour - time.Minute) }
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(25 * time.Hour) }
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTTokenService_TamperedSignature(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)

	token, err := svc.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three dot-separated segments, got %q", token)
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		t.Fatalf("decoding signature segment: %v", err)
	}

	// Flipping any byte of the signature must invalidate it.
	for i := range sig {
		tamperedSig := make([]byte, len(sig))
		copy(tamperedSig, sig)
		tamperedSig[i] ^= 0x01

		tampered := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(tamperedSig)
		if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
			t.Fatalf("byte %d: expected ErrTokenSignatureInvalid, got %v", i, err)
		}
	}
}

func TestJWTTokenService_WrongSecret(t *testing.T) {
	issuer := NewJWTTokenService("secret-a", time.Hour)
	verifier := NewJWTTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestJWTTokenService_Malformed(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)

	for _, garbage := range []string{"", "not-a-token", "only.two", "a.b.c.d"} {
		if _, err := svc.Verify(garbage); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("Verify(%q): expected ErrTokenMalformed, got %v", garbage, err)
		}
	}
}
