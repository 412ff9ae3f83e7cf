package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated     = errors.New("user not authenticated")
	ErrEmptyCart            = errors.New("no items in cart")
	ErrInvalidPromoCode     = errors.New("invalid promo code")
	ErrSubmissionInProgress = errors.New("order submission already in progress")
)

// PersistenceError means the order repository rejected or never acknowledged
// the write. The cart is left untouched so the user can retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist order: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
