package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/velvetrow/salon-backend/internal/app"
	"github.com/velvetrow/salon-backend/internal/config"
	"github.com/velvetrow/salon-backend/internal/db"
	"github.com/velvetrow/salon-backend/internal/logger"
	"github.com/velvetrow/salon-backend/internal/notification"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.LogFile, cfg.IsProduction)

	// Connect DB. The pool lives and dies with the process; components only
	// ever borrow it.
	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		logger.Log.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	// Booking confirmations go out over SMTP when configured.
	notifier := notification.NewNopNotifier()
	if cfg.SMTPHost != "" {
		notifier = notification.NewMailNotifier(notification.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.MailFrom,
		})
	} else {
		logger.Log.Warn("SMTP_HOST not set; booking confirmation mail disabled")
	}

	// Init components
	container := app.NewContainer(app.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		DBPool:         pool,
		JWTSecret:      cfg.JWTSecret,
		JWTTTL:         cfg.JWTAccessTokenTTL,
		AuthCookieName: cfg.AuthCookieName,
		BcryptCost:     cfg.BcryptCost,
		Notifier:       notifier,
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		logger.Log.Infof("server running on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	logger.Log.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("server forced to shutdown: %v", err)
	}

	logger.Log.Info("server exited gracefully")
}
