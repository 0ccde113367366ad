// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → validates, enforces rules, orchestrates
//	Repository (Data layer)  → reads/writes to the database
//
// The service accepts primitives and returns domain errors — it knows
// nothing about HTTP. The handler translates apperror sentinels into status
// codes; the repository translates driver errors into apperror sentinels.
// Neither crosses into the other's vocabulary.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dishdelight/backend/internal/apperror"
	"github.com/dishdelight/backend/internal/auth"
	"github.com/dishdelight/backend/internal/model"
	"github.com/dishdelight/backend/internal/repository"
)

// AuthService orchestrates registration and login.
//
// DEPENDENCIES (injected via NewAuthService):
//   - users      repository.UserRepository  → insert/lookup user records
//   - tokens     *auth.TokenService         → issue JWTs on login
//   - passwords  *auth.PasswordService      → bcrypt hashing/verification
//   - logger     *slog.Logger               → structured logging
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewAuthService creates an AuthService with all required dependencies.
// Call this in server.go when wiring the dependency graph.
func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// LoginResult is returned by Login: the issued token plus the username so
// the client can greet the user without a second request.
type LoginResult struct {
	Token    string
	Username string
}

// Register creates a new account.
//
// ORDER MATTERS:
//  1. Presence checks — all three fields required, nothing defaulted.
//  2. Password policy — rejected before we spend ~250ms on bcrypt.
//  3. Hash.
//  4. Insert — a duplicate email surfaces as ErrConflict from the store.
//
// Steps 1 and 2 fail before anything touches the database. The returned
// user carries only public fields; the hash never leaves this layer upward.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperror.ValidationFailed("", "username, email, and password are required")
	}

	if !auth.ValidPassword(password) {
		return nil, apperror.ValidationFailed("password", auth.PolicyDescription)
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("service/auth: hashing password: %w", err))
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, err
		}
		return nil, apperror.Internal(fmt.Errorf("service/auth: creating user: %w", err))
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Login verifies credentials and issues a 5-hour token.
//
// THE ONE FAILURE OUTCOME:
// "No such account" and "wrong password" both return the identical
// apperror.InvalidCredentials value. If the two cases answered differently
// (message, status, or even consistently different latency from skipping
// bcrypt), an attacker could probe which emails are registered. The bcrypt
// verify against a real stored hash dominates the response time either way.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, apperror.ValidationFailed("", "email and password are required")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.InvalidCredentials()
		}
		return nil, apperror.Internal(fmt.Errorf("service/auth: looking up user: %w", err))
	}

	ok, err := s.passwords.Verify(user.PasswordHash, password)
	if err != nil {
		// A malformed stored hash is a data-integrity problem on our side,
		// never a caller-facing "wrong password".
		return nil, apperror.Internal(fmt.Errorf("service/auth: verifying password: %w", err))
	}
	if !ok {
		return nil, apperror.InvalidCredentials()
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("service/auth: generating token for user %s: %w", user.ID, err))
	}

	s.logger.Info("user logged in", slog.String("userID", user.ID))

	return &LoginResult{
		Token:    token,
		Username: user.Username,
	}, nil
}
