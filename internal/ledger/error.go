package ledger

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrOrderNotOpen = errors.New("order is not open for payment")
)
