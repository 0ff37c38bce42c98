package checkout

import (
	"context"
	"errors"
	"fmt"

	"tiketti-payments/internal/ledger"
	"tiketti-payments/internal/logger"
	"tiketti-payments/internal/metrics"
	"tiketti-payments/internal/organizer"
	"tiketti-payments/internal/utils"
	"tiketti-payments/internal/vismapay"

	"go.uber.org/zap"
)

// ErrGatewayUnavailable is what callers see for any gateway-side failure.
// The gateway's result codes and error lists are logged, never shown to the
// end user.
var ErrGatewayUnavailable = errors.New("payment provider unavailable")

// Gateway is the slice of the Visma Pay client the checkout flow uses.
type Gateway interface {
	CreateToken(ctx context.Context, orderNumber string, amount int64, email, callbackURL string) (string, error)
	PaymentMethods(ctx context.Context) (*vismapay.PaymentMethodsResponse, error)
	PaymentURL(token string) string
}

// StartResult is the outcome of a started payment attempt.
type StartResult struct {
	PaymentID   int64  `json:"payment_id"`
	OrderNumber string `json:"order_number"`
	PaymentURL  string `json:"payment_url"`
}

type Service struct {
	organizers    organizer.Store
	ledger        ledger.Service
	publicBaseURL string
	metrics       *metrics.Registry

	// newGateway builds a gateway client for a credential pair. Tests swap it.
	newGateway func(apiKey, privateKey string) Gateway
}

func NewService(organizers organizer.Store, ledgerSvc ledger.Service, publicBaseURL, lang string) *Service {
	return &Service{
		organizers:    organizers,
		ledger:        ledgerSvc,
		publicBaseURL: publicBaseURL,
		metrics:       metrics.NewRegistry(),
		newGateway: func(apiKey, privateKey string) Gateway {
			return vismapay.NewClient(apiKey, privateKey).WithLang(lang)
		},
	}
}

// WithMetrics shares a counter registry with the rest of the server.
func (s *Service) WithMetrics(reg *metrics.Registry) *Service {
	s.metrics = reg
	return s
}

// Start begins a payment attempt for a pending order: it records a payment
// row, requests a token from the gateway under a fresh order number, and
// returns the hosted payment page URL to redirect the customer to.
//
// Every attempt gets its own order number; a retried order never reuses an
// earlier attempt's number at the gateway.
func (s *Service) Start(ctx context.Context, organizerID, orderID int64) (*StartResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("organizer_id", organizerID),
		zap.Int64("order_id", orderID),
	)

	gw, err := s.gatewayFor(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	order, err := s.ledger.OpenOrder(ctx, organizerID, orderID)
	if err != nil {
		return nil, err
	}

	payment, err := s.ledger.StartPayment(ctx, order)
	if err != nil {
		return nil, err
	}

	callbackURL := fmt.Sprintf("%s/callbacks/vismapay/%d/%d", s.publicBaseURL, organizerID, payment.ID)
	orderNumber := utils.OrderNumber(order.Code)

	token, err := gw.CreateToken(ctx, orderNumber, order.TotalCents, order.Email, callbackURL)
	if err != nil {
		log.Error("gateway token request failed", zap.Error(err))
		s.metrics.GatewayErrors.Inc()
		return nil, ErrGatewayUnavailable
	}

	s.metrics.PaymentsStarted.Inc()
	log.Info("payment started", zap.Int64("payment_id", payment.ID))

	return &StartResult{
		PaymentID:   payment.ID,
		OrderNumber: orderNumber,
		PaymentURL:  gw.PaymentURL(token),
	}, nil
}

// Methods lists the payment options the gateway has enabled for the organizer.
func (s *Service) Methods(ctx context.Context, organizerID int64) (*vismapay.PaymentMethodsResponse, error) {
	gw, err := s.gatewayFor(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	res, err := gw.PaymentMethods(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("gateway methods request failed", zap.Error(err))
		s.metrics.GatewayErrors.Inc()
		return nil, ErrGatewayUnavailable
	}
	return res, nil
}

func (s *Service) gatewayFor(ctx context.Context, organizerID int64) (Gateway, error) {
	org, err := s.organizers.Get(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	apiKey, privateKey, ok := org.Credentials()
	if !ok {
		logger.FromCtx(ctx).Error("organizer has no usable gateway credentials",
			zap.Int64("organizer_id", organizerID))
		return nil, ErrGatewayUnavailable
	}

	return s.newGateway(apiKey, privateKey), nil
}
