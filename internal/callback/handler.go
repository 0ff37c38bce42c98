package callback

import (
	"net/http"
	"strconv"

	"tiketti-payments/internal/ledger"
	"tiketti-payments/internal/logger"
	"tiketti-payments/internal/metrics"
	"tiketti-payments/internal/organizer"
	"tiketti-payments/internal/utils"
	"tiketti-payments/internal/vismapay"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler terminates the asynchronous payment flow: the gateway redirects
// the customer (and notifies server-to-server) to this endpoint with signed
// query parameters after a payment attempt finishes.
//
// Authentication failures and unresolvable references get the exact same
// response, so a caller probing the endpoint cannot tell a bad signature
// from a missing payment. The real cause is only logged.
type Handler struct {
	organizers organizer.Store
	ledger     ledger.Service
	pages      *StatusPageBuilder
	metrics    *metrics.Registry

	// newValidator builds the MAC validator for a credential pair. Tests
	// swap it; production uses the Visma Pay client.
	newValidator func(apiKey, privateKey string) vismapay.Validator
}

func NewHandler(organizers organizer.Store, ledgerSvc ledger.Service, pages *StatusPageBuilder) *Handler {
	return &Handler{
		organizers: organizers,
		ledger:     ledgerSvc,
		pages:      pages,
		metrics:    metrics.NewRegistry(),
		newValidator: func(apiKey, privateKey string) vismapay.Validator {
			return vismapay.NewClient(apiKey, privateKey)
		},
	}
}

// WithMetrics shares a counter registry with the rest of the server.
func (h *Handler) WithMetrics(reg *metrics.Registry) *Handler {
	h.metrics = reg
	return h
}

// HandleCallback handles GET /callbacks/vismapay/{organizerID}/{paymentID}.
func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	log := logger.FromCtx(ctx).With(
		zap.String("return_code", q.Get("RETURN_CODE")),
		zap.String("settled", q.Get("SETTLED")),
		zap.String("order_number", q.Get("ORDER_NUMBER")),
	)

	organizerID, err1 := strconv.ParseInt(chi.URLParam(r, "organizerID"), 10, 64)
	paymentID, err2 := strconv.ParseInt(chi.URLParam(r, "paymentID"), 10, 64)
	if err1 != nil || err2 != nil {
		h.reject(w)
		return
	}

	log = log.With(zap.Int64("organizer_id", organizerID), zap.Int64("payment_id", paymentID))

	org, err := h.organizers.Get(ctx, organizerID)
	if err != nil {
		log.Warn("callback for unknown organizer")
		h.reject(w)
		return
	}

	payment, order, err := h.ledger.ResolvePayment(ctx, organizerID, paymentID)
	if err != nil {
		log.Warn("callback for unresolvable payment", zap.Error(err))
		h.reject(w)
		return
	}

	apiKey, privateKey, ok := org.Credentials()
	if !ok {
		log.Error("organizer has no usable gateway credentials")
		h.reject(w)
		return
	}

	if !h.newValidator(apiKey, privateKey).ValidateCallback(q) {
		log.Warn("callback authcode validation failed")
		h.reject(w)
		return
	}

	// The order number embeds the order code; it must match the order the
	// payment resolves to, so a signed callback for order A cannot be
	// replayed against payment B.
	orderCode, ok := utils.OrderCode(q.Get("ORDER_NUMBER"))
	if !ok || orderCode != order.Code {
		log.Warn("callback order code mismatch")
		h.reject(w)
		return
	}

	h.metrics.CallbacksAccepted.Inc()

	if q.Get("RETURN_CODE") == "0" && q.Get("SETTLED") == "1" {
		if err := h.ledger.ConfirmPayment(ctx, payment); err != nil {
			log.Error("failed to confirm payment", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		h.metrics.PaymentsConfirmed.Inc()
	}

	// Redirect to the status page regardless of outcome; the paid flag only
	// appears when the re-read order really is paid.
	order, err = h.ledger.ReloadOrder(ctx, order.ID)
	if err != nil {
		log.Error("failed to reload order", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	url := h.pages.OrderURL(org.Slug, order.Code, order.Secret, order.Status == ledger.OrderPaid)
	http.Redirect(w, r, url, http.StatusFound)
}

func (h *Handler) reject(w http.ResponseWriter) {
	h.metrics.CallbacksRejected.Inc()
	http.Error(w, "not found", http.StatusNotFound)
}
