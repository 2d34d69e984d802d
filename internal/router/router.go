package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "urbanizacion-api/internal/adapters/storage/memory"
	pg "urbanizacion-api/internal/adapters/storage/postgres"
	"urbanizacion-api/internal/domain/accesstokens"
	"urbanizacion-api/internal/domain/bookings"
	"urbanizacion-api/internal/domain/payments"
	"urbanizacion-api/internal/domain/profiles"
	"urbanizacion-api/internal/middleware"
	"urbanizacion-api/internal/platform/logger"
	"urbanizacion-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: logger de la app. Si es nil se usa uno descartable.
	Log *logrus.Entry
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	var (
		tokensRepo   accesstokens.Repository
		profilesRepo profiles.Repository
		paymentsRepo payments.Repository
		bookingsRepo bookings.Repository
	)

	if db != nil {
		tokensRepo = pg.NewAccessTokensRepo(db)
		profilesRepo = pg.NewProfilesRepo(db)
		paymentsRepo = pg.NewPaymentsRepo(db)
		bookingsRepo = pg.NewBookingsRepo(db)
	} else {
		tokensRepo = mem.NewAccessTokensRepo()
		profilesRepo = mem.NewProfilesRepo()
		paymentsRepo = mem.NewPaymentsRepo()
		bookingsRepo = mem.NewBookingsRepo()
	}

	// Services por módulo
	profilesSvc := profiles.NewService(profilesRepo)
	tokensSvc := accesstokens.NewService(tokensRepo, profilesSvc, log)
	paymentsSvc := payments.NewService(paymentsRepo)
	bookingsSvc := bookings.NewService(bookingsRepo)

	// Rutas por módulo
	profiles.RegisterRoutes(r, profilesSvc)
	accesstokens.RegisterRoutes(r, tokensSvc)
	payments.RegisterRoutes(r, paymentsSvc, profilesSvc)
	bookings.RegisterRoutes(r, bookingsSvc, profilesSvc)

	return r
}
