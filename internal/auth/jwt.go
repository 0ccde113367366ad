// Package auth provides password hashing, the password policy, JWT token
// generation/validation, and the authentication middleware.
//
// AUTHENTICATION FLOW OVERVIEW:
// 1. POST /api/register → password policy check, bcrypt hash, user stored
// 2. POST /api/login → email lookup, bcrypt verify, JWT issued to the client
// 3. On subsequent API calls, the client sends "Authorization: Bearer <jwt>";
//    middleware validates it and sets the userID in the request context
//
// WHY JWT?
// JWT (JSON Web Token) is stateless — the server doesn't need to store session
// data. All the information needed (userID, expiry) is inside the signed token.
// The signature ensures nobody can tamper with it without the secret key.
// There is no revocation list: a token stays valid until its expiry passes.
//
// JWT STRUCTURE (three base64-encoded parts separated by dots):
//
//	HEADER.PAYLOAD.SIGNATURE
//	- Header: algorithm + token type → {"alg":"HS256","typ":"JWT"}
//	- Payload: claims (data) → {"sub":"userID","exp":1234567890}
//	- Signature: HMAC-SHA256(header+"."+payload, secretKey)
//
// The server can verify the signature without any DB lookup — just the secret.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 5 * time.Hour

// Sentinel errors returned by Validate. The middleware treats both the same
// way (403), but callers that care can tell an expired token from a
// tampered/garbage one.
var (
	ErrTokenExpired = errors.New("auth: token expired")
	ErrTokenInvalid = errors.New("auth: invalid token")
)

// TokenService handles JWT creation and validation.
//
// It holds the HMAC secret key used to sign and verify tokens. The exact
// same secret must be used for both operations — if the process restarts
// with a different secret, every outstanding token becomes unverifiable.
// That is the operational contract, not a bug: the secret is bound once at
// startup and never mutated.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService with the given secret.
// The secret should be at least 32 bytes of random data in production.
// Example: JWT_SECRET=$(openssl rand -hex 32)
func NewTokenService(secret string) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// claims is the JWT payload. It embeds jwt.RegisteredClaims which includes
// standard fields like Issuer, Subject, ExpiresAt, IssuedAt.
//
// We use "sub" (Subject) to store the internal user ID.
// This is the standard JWT claim for identifying who the token belongs to.
type claims struct {
	jwt.RegisteredClaims
}

// Generate creates and signs a new JWT for the given userID, valid for
// TokenTTL (5 hours) from now.
//
// Signing algorithm: HS256 (HMAC-SHA256)
// - Symmetric: same key for signing and verifying
// - Fast and simple — good for single-server deployments
func (s *TokenService) Generate(userID string) (string, error) {
	return s.GenerateWithDuration(userID, TokenTTL)
}

// GenerateWithDuration creates a token with a custom expiry duration.
// Used by Generate and by tests that need an already-expired token.
func (s *TokenService) GenerateWithDuration(userID string, d time.Duration) (string, error) {
	now := time.Now()

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
			Issuer:    "dishdelight",
		},
	}

	// jwt.NewWithClaims creates an unsigned token with the given algorithm.
	// SignedString(key) signs it and returns the complete JWT string.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies a JWT string.
// Returns the userID (stored in the "sub" claim) if the token is valid.
//
// VALIDATION CHECKS (performed by the jwt library):
//   - Signature is valid (wasn't tampered with)
//   - Token is not expired (ExpiresAt is in the future)
//   - Issuer matches "dishdelight" (prevents tokens from other apps)
//   - Algorithm is HS256 (prevents algorithm confusion attacks)
//
// ALGORITHM CONFUSION ATTACK:
// Without checking the algorithm, an attacker could send a token signed with
// "none" and the library might accept it. Passing jwt.WithValidMethods prevents this.
//
// Failure modes: ErrTokenExpired for a past expiry, ErrTokenInvalid for
// everything else (bad signature, corrupted encoding, wrong issuer, missing
// or empty subject). A structurally valid token with an empty subject is
// invalid — a signed token that identifies nobody authorizes nothing.
func (s *TokenService) Validate(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (any, error) {
			// Reject tokens that aren't signed with HS256
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer("dishdelight"),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		// Translate jwt library errors into our sentinels
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("%w: bad claims", ErrTokenInvalid)
	}

	userID := c.Subject
	if userID == "" {
		return "", fmt.Errorf("%w: token has no subject", ErrTokenInvalid)
	}

	return userID, nil
}
