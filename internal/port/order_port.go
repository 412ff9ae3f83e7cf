package port

import (
	"context"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
)

type OrderRepository interface {
	// NextID reserves an identifier for a new order.
	NextID(ctx context.Context) (string, error)
	// Store writes the whole order atomically.
	Store(ctx context.Context, order domain.Order) error
	GetOrder(ctx context.Context, orderID string) (domain.Order, error)
	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type UserProvider interface {
	CurrentUserID(ctx context.Context) (string, bool)
}

// StaticUser is a UserProvider for a fixed, already authenticated user.
// The empty value means nobody is signed in.
type StaticUser string

func (u StaticUser) CurrentUserID(context.Context) (string, bool) {
	return string(u), u != ""
}
