// Command server runs the portfolio site: landing page, contact-form API,
// and the access-gated admin listing.
//
// Configuration comes from the environment (optionally via a .env file).
// Schema migration never happens implicitly: pass -migrate to apply it and
// exit, or set DB_AUTO_MIGRATE=true to apply it before serving.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-portfolio-backend/internal/config"
	httpapi "github.com/tbourn/go-portfolio-backend/internal/http"
	"github.com/tbourn/go-portfolio-backend/internal/mail"
	"github.com/tbourn/go-portfolio-backend/internal/observability"
	"github.com/tbourn/go-portfolio-backend/internal/repo"
	"github.com/tbourn/go-portfolio-backend/internal/sysutil"
)

func main() {
	migrate := flag.Bool("migrate", false, "apply the database schema and exit")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.MustLoad()

	// Logging
	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty || cfg.Debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	// Store
	db, err := repo.Open(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}

	if *migrate || cfg.AutoMigrate {
		if err := repo.AutoMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("migrate schema")
		}
		log.Info().Msg("schema migrated")
		if *migrate {
			return
		}
	}

	// Tracing
	ctx := context.Background()
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("setup tracing")
	}

	// Notification sender
	mailer := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.Mail.Server,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		UseSSL:   cfg.Mail.UseSSL,
	})

	// HTTP
	gin.SetMode(cfg.GinMode())
	r := gin.New()
	httpapi.RegisterRoutes(r, db, mailer, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracer shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
