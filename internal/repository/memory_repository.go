package repository

import (
	"cmp"
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/nikolayk812/foodorder-demo/internal/port"
	"slices"
	"sync"
)

// memoryOrderRepository keeps orders in process memory. It backs the CLI
// when no DATABASE_URL is configured.
type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewMemoryOrder() port.OrderRepository {
	return &memoryOrderRepository{
		orders: make(map[string]domain.Order),
	}
}

func (r *memoryOrderRepository) NextID(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return uuid.NewString(), nil
}

func (r *memoryOrderRepository) Store(ctx context.Context, order domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if order.UserID == "" {
		return fmt.Errorf("userID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.OrderID]; exists {
		return ErrOrderAlreadyExists
	}

	r.orders[order.OrderID] = cloneOrder(order)
	return nil
}

func (r *memoryOrderRepository) GetOrder(_ context.Context, orderID string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[orderID]
	if !exists {
		return domain.Order{}, ErrOrderNotFound
	}

	return cloneOrder(order), nil
}

func (r *memoryOrderRepository) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []domain.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			orders = append(orders, cloneOrder(order))
		}
	}

	slices.SortFunc(orders, func(a, b domain.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.OrderID, b.OrderID)
	})

	return orders, nil
}

func cloneOrder(order domain.Order) domain.Order {
	order.Lines = slices.Clone(order.Lines)
	return order
}
