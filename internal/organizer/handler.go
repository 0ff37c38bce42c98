package organizer

import (
	"encoding/json"
	"net/http"

	"tiketti-payments/internal/logger"

	"go.uber.org/zap"
)

// TokenHandler issues merchant API tokens in exchange for an organizer's
// API secret.
type TokenHandler struct {
	store     Store
	jwtSecret string
}

func NewTokenHandler(store Store, jwtSecret string) *TokenHandler {
	return &TokenHandler{store: store, jwtSecret: jwtSecret}
}

type tokenRequest struct {
	Organizer string `json:"organizer"`
	APISecret string `json:"api_secret"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *TokenHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}

	log := logger.FromCtx(r.Context()).With(zap.String("organizer", req.Organizer))

	o, err := h.store.GetBySlug(r.Context(), req.Organizer)
	if err != nil {
		// Same response as a bad secret: don't reveal which organizers exist.
		log.Warn("token request for unknown organizer")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := VerifyAPISecret(o, req.APISecret); err != nil {
		log.Warn("token request with invalid secret")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := GenerateJWT(o, h.jwtSecret)
	if err != nil {
		log.Error("failed to sign token", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tokenResponse{Token: token})
}
