package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// newTestTokenService creates a TokenService for testing.
// It uses a fixed, known secret so tests are deterministic.
func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	ts, err := NewTokenService("test-secret-at-least-16-chars!!")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return ts
}

// =========================================================================
// TOKEN SERVICE CONSTRUCTION TESTS
// =========================================================================

func TestNewTokenService_ShortSecret(t *testing.T) {
	_, err := NewTokenService("short")
	if err == nil {
		t.Fatal("NewTokenService() should reject secrets shorter than 16 chars")
	}
}

func TestNewTokenService_ValidSecret(t *testing.T) {
	_, err := NewTokenService("this-is-16-chars")
	if err != nil {
		t.Fatalf("NewTokenService() unexpected error for valid secret: %v", err)
	}
}

// =========================================================================
// GENERATE TESTS
// =========================================================================

func TestGenerate_ReturnsNonEmptyToken(t *testing.T) {
	ts := newTestTokenService(t)

	token, err := ts.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if token == "" {
		t.Error("Generate() returned empty token")
	}

	// JWT tokens have 3 dot-separated parts: header.payload.signature
	dots := 0
	for _, c := range token {
		if c == '.' {
			dots++
		}
	}
	if dots != 2 {
		t.Errorf("Generate() token doesn't look like a JWT (expected 2 dots, got %d)", dots)
	}
}

func TestGenerate_ExpiryIsFiveHours(t *testing.T) {
	ts := newTestTokenService(t)

	before := time.Now()
	token, err := ts.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	after := time.Now()

	// Decode the claims with the same secret to inspect the expiry.
	var c claims
	_, err = jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return []byte("test-secret-at-least-16-chars!!"), nil
	})
	if err != nil {
		t.Fatalf("parsing issued token: %v", err)
	}

	exp := c.ExpiresAt.Time
	if exp.Before(before.Add(TokenTTL)) || exp.After(after.Add(TokenTTL)) {
		t.Errorf("expiry = %v, want %v after issuance", exp, TokenTTL)
	}
}

// =========================================================================
// VALIDATE TESTS
// =========================================================================

func TestValidate_RoundTrip(t *testing.T) {
	ts := newTestTokenService(t)
	userID := "user-abc-123"

	token, err := ts.Generate(userID)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Validate should return the exact same userID we put in
	got, err := ts.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got != userID {
		t.Errorf("Validate() userID = %q, want %q", got, userID)
	}
}

func TestValidate_ExpiredToken(t *testing.T) {
	ts := newTestTokenService(t)

	// Generate a token that expired 1 second ago
	token, err := ts.GenerateWithDuration("user-123", -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateWithDuration() error = %v", err)
	}

	_, err = ts.Validate(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("Validate() error = %v, want ErrTokenExpired", err)
	}
}

func TestValidate_TamperedToken(t *testing.T) {
	ts := newTestTokenService(t)

	token, _ := ts.Generate("user-123")

	// Flip characters in the signature to simulate tampering
	tampered := token[:len(token)-3] + "xxx"

	_, err := ts.Validate(tampered)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Validate() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	ts1, _ := NewTokenService("correct-secret-32-chars-long!!!!")
	ts2, _ := NewTokenService("wrong-secret-32-chars-long!!!!!!")

	// Token signed with ts1's secret
	token, _ := ts1.Generate("user-123")

	// Validating with ts2's (different) secret must fail — this is the
	// operational invariant: issuance and verification share one secret.
	_, err := ts2.Validate(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Validate() with wrong secret error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidate_EmptyToken(t *testing.T) {
	ts := newTestTokenService(t)

	_, err := ts.Validate("")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Validate(\"\") error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidate_GarbageString(t *testing.T) {
	ts := newTestTokenService(t)

	_, err := ts.Validate("not.a.jwt.token")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Validate() garbage error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidate_EmptySubjectIsInvalid(t *testing.T) {
	ts := newTestTokenService(t)

	// A correctly signed token that identifies nobody must not validate —
	// "valid but empty" would otherwise slip past the middleware.
	token, err := ts.GenerateWithDuration("", time.Hour)
	if err != nil {
		t.Fatalf("GenerateWithDuration() error = %v", err)
	}

	_, err = ts.Validate(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Validate() empty-subject error = %v, want ErrTokenInvalid", err)
	}
}
