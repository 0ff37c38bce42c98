package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tiketti-payments/internal/callback"
	"tiketti-payments/internal/checkout"
	"tiketti-payments/internal/config"
	"tiketti-payments/internal/metrics"
	"tiketti-payments/internal/organizer"

	"github.com/stretchr/testify/assert"
)

func TestSetupRouter(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		PublicBaseURL: "https://shop.example.com",
	}

	// Handlers with nil collaborators are enough for wiring tests that never
	// reach the service layer.
	router := setupRouter(cfg,
		callback.NewHandler(nil, nil, callback.NewStatusPageBuilder(cfg.PublicBaseURL)),
		checkout.NewHandler(checkout.NewService(nil, nil, cfg.PublicBaseURL, "en")),
		organizer.NewTokenHandler(nil, cfg.JWTSecret),
		metrics.NewRegistry(),
	)

	t.Run("Health Check", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ok", rr.Body.String())
	})

	t.Run("Metrics", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/metrics", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "payments_started")
	})

	t.Run("Merchant API requires auth", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/payment-methods", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Unknown route", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/nope", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
