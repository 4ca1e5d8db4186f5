// Package server assembles the development product API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/coffeeshop/internal/models"
	"github.com/iudanet/coffeeshop/internal/server/handlers"
	"github.com/iudanet/coffeeshop/internal/server/middleware"
	"github.com/iudanet/coffeeshop/internal/server/storage"
	"github.com/iudanet/coffeeshop/internal/server/storage/memory"
)

const (
	// loginRate попыток входа с одного адреса за loginWindow
	loginRate   = 10
	loginWindow = time.Minute

	shutdownTimeout = 5 * time.Second
)

// Config настройки dev сервера
type Config struct {
	Addr          string
	Version       string
	JWT           handlers.JWTConfig
	AdminEmail    string
	AdminPassword string
	// ProtectProducts требует роль admin для POST/PUT/DELETE /products
	ProtectProducts bool
}

// Server dev сервер каталога
type Server struct {
	cfg     Config
	logger  *slog.Logger
	limiter *middleware.RateLimiter
	handler http.Handler
}

// New creates the server with a seeded in-memory store and, if configured, an admin account
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Server, error) {
	store := memory.New()

	if cfg.AdminEmail != "" {
		admin := &models.User{
			Email:    cfg.AdminEmail,
			Username: "admin",
			Password: cfg.AdminPassword,
			Role:     models.RoleAdmin,
		}
		if err := store.CreateUser(ctx, admin); err != nil {
			return nil, fmt.Errorf("failed to seed admin user: %w", err)
		}
		logger.Info("admin user seeded", "email", cfg.AdminEmail)
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		limiter: middleware.NewRateLimiter(loginRate, loginWindow, logger),
	}
	s.handler = s.routes(store, store)
	return s, nil
}

// Handler returns the complete middleware chain
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes(products storage.ProductStorage, users storage.UserStorage) http.Handler {
	health := handlers.NewHealthHandler(s.logger, s.cfg.Version)
	auth := handlers.NewAuthHandler(s.logger, users, s.cfg.JWT)
	catalog := handlers.NewProductHandler(s.logger, products)

	authenticated := middleware.AuthMiddleware(s.logger, s.cfg.JWT)
	mutation := func(h http.HandlerFunc) http.Handler {
		if !s.cfg.ProtectProducts {
			return h
		}
		return authenticated(middleware.RequireRole(s.logger, models.RoleAdmin)(h))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", health.Health)

	mux.Handle("POST /auth/login", s.limiter.Middleware(http.HandlerFunc(auth.Login)))
	mux.Handle("GET /auth/me", authenticated(http.HandlerFunc(auth.Me)))

	mux.HandleFunc("GET "+models.ProductsPath, catalog.List)
	mux.HandleFunc("GET "+models.CategoriesPath, catalog.Categories)
	mux.HandleFunc("GET "+models.ProductsPath+"/{id}", catalog.Get)
	mux.Handle("POST "+models.ProductsPath, mutation(catalog.Create))
	mux.Handle("PUT "+models.ProductsPath+"/{id}", mutation(catalog.Update))
	mux.Handle("PATCH "+models.ProductsPath+"/{id}", mutation(catalog.Update))
	mux.Handle("DELETE "+models.ProductsPath+"/{id}", mutation(catalog.Delete))

	var h http.Handler = mux
	h = middleware.LoggingMiddleware(s.logger, "/health")(h)
	h = middleware.RecoveryMiddleware(s.logger)(h)
	return h
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on an existing listener until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("server listening", "addr", ln.Addr().String(), "version", s.cfg.Version)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		s.limiter.Run(ctx)
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})
	return g.Wait()
}
