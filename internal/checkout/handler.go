package checkout

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"tiketti-payments/internal/ledger"
	"tiketti-payments/internal/organizer"
	"tiketti-payments/internal/utils"

	"github.com/go-chi/chi/v5"
)

// Handler is the merchant-facing HTTP API for starting payments. Requests
// are authenticated by the JWT middleware, which puts the organizer id in
// the context.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// StartPayment handles POST /api/orders/{orderID}/pay.
func (h *Handler) StartPayment(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := utils.OrganizerIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Start(r.Context(), organizerID, orderID)
	if err != nil {
		respondStartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// PaymentMethods handles GET /api/payment-methods.
func (h *Handler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := utils.OrganizerIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	res, err := h.svc.Methods(r.Context(), organizerID)
	if err != nil {
		respondStartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res.PaymentMethods)
}

func respondStartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, organizer.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ledger.ErrOrderNotOpen):
		http.Error(w, "order is not open for payment", http.StatusConflict)
	case errors.Is(err, ErrGatewayUnavailable):
		http.Error(w, "could not reach payment provider, please try again", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
