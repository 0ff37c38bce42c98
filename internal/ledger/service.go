package ledger

import (
	"context"

	"tiketti-payments/internal/logger"

	"go.uber.org/zap"
)

// Service is the ledger contract the payment flow depends on. The callback
// handler and checkout service only see this interface; the Postgres
// repository behind it owns the order/payment lifecycle.
type Service interface {
	// ResolvePayment loads a payment and its order, scoped to the given
	// organizer. A payment whose order belongs to another organizer is
	// reported as ErrNotFound.
	ResolvePayment(ctx context.Context, organizerID, paymentID int64) (*Payment, *Order, error)

	// OpenOrder loads an order that can still be paid.
	OpenOrder(ctx context.Context, organizerID, orderID int64) (*Order, error)

	// StartPayment records a new payment attempt for the order.
	StartPayment(ctx context.Context, order *Order) (*Payment, error)

	// ConfirmPayment applies the paid transition. Safe to call again for an
	// already-confirmed payment.
	ConfirmPayment(ctx context.Context, p *Payment) error

	// ReloadOrder re-reads the order's current state.
	ReloadOrder(ctx context.Context, orderID int64) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ResolvePayment(ctx context.Context, organizerID, paymentID int64) (*Payment, *Order, error) {
	p, err := s.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, nil, err
	}

	o, err := s.repo.GetOrder(ctx, p.OrderID)
	if err != nil {
		return nil, nil, err
	}

	if o.OrganizerID != organizerID {
		return nil, nil, ErrNotFound
	}

	return p, o, nil
}

func (s *service) OpenOrder(ctx context.Context, organizerID, orderID int64) (*Order, error) {
	o, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.OrganizerID != organizerID {
		return nil, ErrNotFound
	}

	if o.Status != OrderPending {
		return nil, ErrOrderNotOpen
	}

	return o, nil
}

func (s *service) StartPayment(ctx context.Context, order *Order) (*Payment, error) {
	p := &Payment{
		OrderID:     order.ID,
		AmountCents: order.TotalCents,
		Status:      PaymentCreated,
		Provider:    "vismapay",
	}

	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("payment attempt created",
		zap.Int64("payment_id", p.ID),
		zap.String("order_code", order.Code),
	)
	return p, nil
}

func (s *service) ConfirmPayment(ctx context.Context, p *Payment) error {
	if err := s.repo.ConfirmPaymentTx(ctx, p.ID, p.OrderID); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("payment confirmed", zap.Int64("payment_id", p.ID))
	return nil
}

func (s *service) ReloadOrder(ctx context.Context, orderID int64) (*Order, error) {
	return s.repo.GetOrder(ctx, orderID)
}
