package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/coffeeshop/internal/server"
	"github.com/iudanet/coffeeshop/internal/server/handlers"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":5000", "Listen address")
	jwtSecret := flag.String("jwt-secret", "", "Secret for signing access tokens (env COFFEESHOP_JWT_SECRET)")
	adminEmail := flag.String("admin-email", "admin@coffee.shop", "Seeded admin email, empty to skip")
	adminPassword := flag.String("admin-password", "admin", "Seeded admin password")
	protect := flag.Bool("protect-products", false, "Require admin token for product mutations")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	secret := *jwtSecret
	if secret == "" {
		secret = os.Getenv("COFFEESHOP_JWT_SECRET")
	}
	if secret == "" {
		logger.Warn("jwt secret not set, using insecure development secret")
		secret = "coffeeshop-dev-secret"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, server.Config{
		Addr:            *addr,
		Version:         Version,
		JWT:             handlers.JWTConfig{Secret: []byte(secret), AccessTokenTTL: handlers.DefaultTokenTTL},
		AdminEmail:      *adminEmail,
		AdminPassword:   *adminPassword,
		ProtectProducts: *protect,
	}, logger)
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("CoffeeShop Dev Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
