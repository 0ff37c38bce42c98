package ledger

import "time"

type OrderStatus string

const (
	OrderPending  OrderStatus = "pending"
	OrderPaid     OrderStatus = "paid"
	OrderExpired  OrderStatus = "expired"
	OrderCanceled OrderStatus = "canceled"
)

type PaymentStatus string

const (
	PaymentCreated   PaymentStatus = "created"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentFailed    PaymentStatus = "failed"
)

// Order is the merchant-side order being paid. Code is the identifier shown
// to the customer; Secret is the capability token that authorizes viewing
// the order status page.
type Order struct {
	ID          int64
	OrganizerID int64
	Code        string
	Secret      string
	Email       string
	Status      OrderStatus
	TotalCents  int64
	CreatedAt   time.Time
	PaidAt      *time.Time
}

// Payment is one attempt to pay an order through the gateway.
type Payment struct {
	ID         int64
	OrderID    int64
	AmountCents int64
	Status     PaymentStatus
	Provider   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
