// Package server sets up the HTTP server, router, and all route definitions.
//
// SERVER ARCHITECTURE:
// This package is the "wiring" layer — it connects handlers, middleware, and routes.
// It is the composition root: every dependency is assembled here, in one
// place, rather than scattered across the codebase.
//
// DEPENDENCY INJECTION FLOW:
//
//	main.go creates:  Config, logger → passed to Server
//	Server.New creates: sqlite.DB → TokenService/PasswordService
//	                  → AuthService/FavoriteService → handlers → routes
//
// Each layer only receives what it needs: services get repository
// interfaces (not the concrete sqlite.DB), handlers get services (not
// repositories), and only the TokenService ever holds the signing secret.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dishdelight/backend/internal/auth"
	"github.com/dishdelight/backend/internal/config"
	"github.com/dishdelight/backend/internal/handler"
	"github.com/dishdelight/backend/internal/middleware"
	sqliteRepo "github.com/dishdelight/backend/internal/repository/sqlite"
	"github.com/dishdelight/backend/internal/service"
)

// Server represents the HTTP server and all its dependencies.
//
// RESOURCE MANAGEMENT:
// The Server owns the database connection pool (db). On shutdown it must be
// closed to flush pending writes and release the file lock — handled in
// Start() during graceful shutdown.
type Server struct {
	router *chi.Mux
	config *config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a new Server with the given config.
//
// This is where the entire dependency chain is assembled:
//  1. Open the database (sqlite.New runs migrations)
//  2. Build the auth primitives (TokenService with the injected secret,
//     PasswordService with the default bcrypt cost)
//  3. Build the services, then the handlers
//  4. Wire handlers to routes
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close() // Clean up DB if route setup fails
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
//
//	GET    /                          → welcome/health (public)
//	POST   /api/register              → create account (public)
//	POST   /api/login                 → obtain token (public)
//	POST   /api/favorites             → add favorite (token required)
//	GET    /api/favorites             → list favorites (token required)
//	DELETE /api/favorites/{meal_id}   → delete favorite (token required)
//
// MIDDLEWARE ORDER MATTERS:
// Middleware executes in the order it's added:
//  1. RequestID — assigns a unique ID to each request (for tracing)
//  2. RealIP — extracts the real client IP from proxy headers
//  3. Recoverer — catches panics and returns 500 instead of crashing
//  4. Logger — logs each request with timing info
//
// RequireAuth is applied per-group, not globally: register and login must
// stay reachable without a token.
func (s *Server) setupRoutes() error {
	// === Global Middleware ===
	s.router.Use(chimiddleware.RequestID) // Adds X-Request-ID header
	s.router.Use(chimiddleware.RealIP)    // Extracts real IP from X-Forwarded-For
	s.router.Use(chimiddleware.Recoverer) // Recovers from panics, returns 500

	s.router.Use(middleware.Logger(s.logger))

	// === Auth primitives ===
	// The signing secret enters the process exactly once, here. It lives
	// inside the TokenService for the lifetime of the server.
	tokens, err := auth.NewTokenService(s.config.JWTSecret)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordService()

	// === Services and handlers ===
	// The handlers never touch the database; the services never touch HTTP.
	authService := service.NewAuthService(s.db, tokens, passwords, s.logger)
	favoriteService := service.NewFavoriteService(s.db, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService, s.logger)

	s.router.Get("/", handler.HandleRoot)

	s.router.Route("/api", func(r chi.Router) {
		// Public credential endpoints
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)

		// Token-gated favorites
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(tokens))
			r.Post("/favorites", favoriteHandler.HandleAdd)
			r.Get("/favorites", favoriteHandler.HandleList)
			r.Delete("/favorites/{meal_id}", favoriteHandler.HandleDelete)
		})
	})

	return nil
}

// Start starts the HTTP server and handles graceful shutdown.
//
// GRACEFUL SHUTDOWN:
//  1. Stop accepting new HTTP connections
//  2. Wait for in-flight requests to finish (30s timeout)
//  3. Close the database connection (flushes WAL, releases file lock)
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
