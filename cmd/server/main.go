package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alertdash/alertdash/internal/config"
	"github.com/alertdash/alertdash/internal/dispatch"
	"github.com/alertdash/alertdash/internal/handler"
	"github.com/alertdash/alertdash/internal/logger"
	"github.com/alertdash/alertdash/internal/mail"
	"github.com/alertdash/alertdash/internal/middleware"
	"github.com/alertdash/alertdash/internal/recipients"
	"github.com/alertdash/alertdash/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("version", "0.1.0").Msg("starting alertdash server")

	// The process must not come up without SMTP credentials
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	generated, err := cfg.EnsureSecretKey()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize secret key")
	}
	if generated {
		log.Warn().Msg("using auto-generated secret key; set ALERTDASH_SECURITY_SECRET_KEY for production")
	}

	// Initialize components
	store := recipients.NewStore(cfg.Recipients.File, log)
	sender := mail.NewSMTPSender(cfg.Mail, log)
	dispatcher := dispatch.NewDispatcher(store, sender, log)
	log.Info().
		Str("sender", cfg.Mail.SenderAddress).
		Str("smtp_host", cfg.Mail.Host).
		Str("recipient_file", cfg.Recipients.File).
		Msg("alert dispatcher initialized")

	// Initialize handlers and middleware
	h := handler.New(store, dispatcher, cfg, log)
	mw := middleware.New(log)

	// Set up router
	r := router.New(h, mw)

	// Create HTTP server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
