package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Repository interface {
	GetPayment(ctx context.Context, id int64) (*Payment, error)
	GetOrder(ctx context.Context, id int64) (*Order, error)
	GetOrderByCode(ctx context.Context, organizerID int64, code string) (*Order, error)
	CreatePayment(ctx context.Context, p *Payment) error
	ConfirmPaymentTx(ctx context.Context, paymentID, orderID int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetPayment(ctx context.Context, id int64) (*Payment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, order_id, amount_cents, status, provider, created_at, updated_at
		FROM payments WHERE id = $1
	`, id)

	var p Payment
	err := row.Scan(&p.ID, &p.OrderID, &p.AmountCents, &p.Status, &p.Provider, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetOrder(ctx context.Context, id int64) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, organizer_id, code, secret, email, status, total_cents, created_at, paid_at
		FROM orders WHERE id = $1
	`, id)
	return scanOrder(row)
}

func (r *repository) GetOrderByCode(ctx context.Context, organizerID int64, code string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, organizer_id, code, secret, email, status, total_cents, created_at, paid_at
		FROM orders WHERE organizer_id = $1 AND code = $2
	`, organizerID, code)
	return scanOrder(row)
}

func scanOrder(row *sql.Row) (*Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.OrganizerID, &o.Code, &o.Secret, &o.Email, &o.Status, &o.TotalCents, &o.CreatedAt, &o.PaidAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) CreatePayment(ctx context.Context, p *Payment) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO payments (order_id, amount_cents, status, provider)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, p.OrderID, p.AmountCents, p.Status, p.Provider).Scan(&p.ID)
}

// ConfirmPaymentTx marks the payment confirmed and its order paid in one
// transaction. Both updates guard on the current status, so re-running the
// confirmation for an already-paid order is a no-op rather than an error.
func (r *repository) ConfirmPaymentTx(ctx context.Context, paymentID, orderID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin confirm tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE payments SET status = 'confirmed', updated_at = NOW()
		WHERE id = $1 AND status <> 'confirmed'
	`, paymentID)
	if err != nil {
		return fmt.Errorf("confirm payment: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE orders SET status = 'paid', paid_at = NOW()
		WHERE id = $1 AND status <> 'paid'
	`, orderID)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}

	return tx.Commit()
}
