package main

import (
	"database/sql"
	"net"
	"net/http"
	"time"

	supa "urbanizacion-api/internal/adapters/auth/supabase"
	pg "urbanizacion-api/internal/adapters/storage/postgres"
	"urbanizacion-api/internal/platform/config"
	"urbanizacion-api/internal/platform/logger"
	"urbanizacion-api/internal/ports/auth"
	"urbanizacion-api/internal/router"

	_ "urbanizacion-api/docs"
)

// @title Urbanizacion API
// @version 1.0
// @description API de gestión de una urbanización: accesos QR de visitantes, pagos de alícuotas y reservas de áreas comunales.
// @BasePath /
func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		App:    "urbanizacion-api",
	})

	var db *sql.DB
	if cfg.Database.DSN != "" {
		opened, err := pg.Open(cfg.Database.DSN)
		if err != nil {
			log.WithError(err).Fatal("cannot open database")
		}
		if err := pg.RunMigrations(opened); err != nil {
			log.WithError(err).Fatal("cannot run migrations")
		}
		db = opened
		log.Info("using postgres storage")
	} else {
		log.Warn("no database.dsn configured, using in-memory storage")
	}

	var verifier auth.AuthVerifier
	if cfg.Auth.BaseURL != "" {
		client, err := supa.NewClient(supa.Config{
			BaseURL: cfg.Auth.BaseURL,
			APIKey:  cfg.Auth.APIKey,
			Timeout: 5 * time.Second,
		})
		if err != nil {
			log.WithError(err).Fatal("cannot build auth client")
		}
		verifier = supa.NewVerifier(client)
		log.Info("auth verifier enabled")
	} else {
		log.Warn("no auth.base_url configured, running in dev mode (X-Debug-User-ID)")
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Log:          log,
	})

	addr := net.JoinHostPort(cfg.Server.Address, cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.WithField("addr", addr).Info("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server error")
	}
}
