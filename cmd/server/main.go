package main

import (
	"log"
	"net/http"

	"tiketti-payments/internal/callback"
	"tiketti-payments/internal/checkout"
	"tiketti-payments/internal/config"
	"tiketti-payments/internal/db"
	"tiketti-payments/internal/ledger"
	"tiketti-payments/internal/logger"
	"tiketti-payments/internal/metrics"
	"tiketti-payments/internal/middleware"
	"tiketti-payments/internal/organizer"

	"github.com/go-chi/chi/v5"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	ledgerSvc := ledger.NewService(ledger.NewRepository(database))
	organizers := organizer.NewRepository(database)
	registry := metrics.NewRegistry()

	callbackHandler := callback.NewHandler(
		organizers,
		ledgerSvc,
		callback.NewStatusPageBuilder(cfg.PublicBaseURL),
	).WithMetrics(registry)
	checkoutHandler := checkout.NewHandler(
		checkout.NewService(organizers, ledgerSvc, cfg.PublicBaseURL, cfg.VismaPayLang).WithMetrics(registry),
	)
	tokenHandler := organizer.NewTokenHandler(organizers, cfg.JWTSecret)

	router := setupRouter(cfg, callbackHandler, checkoutHandler, tokenHandler, registry)

	log.Printf("🚀 payments server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}

func setupRouter(
	cfg *config.Config,
	callbackHandler *callback.Handler,
	checkoutHandler *checkout.Handler,
	tokenHandler *organizer.TokenHandler,
	registry *metrics.Registry,
) chi.Router {
	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.RateLimit)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/metrics", registry.Handler())

	// Gateway-facing: the redirect/notify callback is unauthenticated by
	// design, its query parameters carry their own MAC.
	r.Get("/callbacks/vismapay/{organizerID}/{paymentID}", callbackHandler.HandleCallback)

	r.Post("/api/auth/token", tokenHandler.IssueToken)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(cfg.JWTSecret))
		r.Post("/api/orders/{orderID}/pay", checkoutHandler.StartPayment)
		r.Get("/api/payment-methods", checkoutHandler.PaymentMethods)
	})

	return r
}
