package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodorder-demo/internal/db"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/nikolayk812/foodorder-demo/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"math"
)

const pgUniqueViolation = "23505"

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *orderRepository) NextID(ctx context.Context) (string, error) {
	id, err := r.q.NextOrderID(ctx)
	if err != nil {
		return "", fmt.Errorf("q.NextOrderID: %w", err)
	}
	return id.String(), nil
}

func (r *orderRepository) Store(ctx context.Context, order domain.Order) error {
	if order.UserID == "" {
		return fmt.Errorf("userID is empty")
	}

	orderID, err := uuid.Parse(order.OrderID)
	if err != nil {
		return fmt.Errorf("orderID[%s] is not valid: %w", order.OrderID, err)
	}

	if len(order.Lines) > math.MaxInt32 {
		return fmt.Errorf("order has %d lines: %w", len(order.Lines), ErrQuantityOutOfRange)
	}
	for _, line := range order.Lines {
		if line.Quantity > math.MaxInt32 {
			return fmt.Errorf("food[%s] quantity %d: %w", line.FoodID, line.Quantity, ErrQuantityOutOfRange)
		}
	}

	return r.withTx(ctx, func(q *db.Queries) error {
		err := q.InsertOrder(ctx, db.InsertOrderParams{
			OrderID:   orderID,
			UserID:    order.UserID,
			Subtotal:  order.Subtotal.Amount,
			Tax:       order.Tax.Amount,
			Total:     order.Total.Amount,
			Currency:  order.Total.Currency.String(),
			PromoCode: pgtype.Text{String: order.PromoCode, Valid: order.PromoCode != ""},
			OrderDate: order.CreatedAt,
			Status:    order.Status.String(),
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return ErrOrderAlreadyExists
			}
			return fmt.Errorf("q.InsertOrder: %w", err)
		}

		for i, line := range order.Lines {
			err := q.InsertOrderLine(ctx, db.InsertOrderLineParams{
				OrderID:   orderID,
				Position:  int32(i),
				FoodID:    line.FoodID,
				FoodName:  line.FoodName,
				Quantity:  int32(line.Quantity),
				UnitPrice: line.UnitPrice.Amount,
			})
			if err != nil {
				return fmt.Errorf("q.InsertOrderLine[%d]: %w", i, err)
			}
		}

		return nil
	})
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return domain.Order{}, ErrOrderNotFound
	}

	row, err := r.q.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("q.GetOrder: %w", err)
	}

	return r.loadOrder(ctx, row)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID is empty")
	}

	rows, err := r.q.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrdersByUser: %w", err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := r.loadOrder(ctx, row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *orderRepository) loadOrder(ctx context.Context, row db.Order) (domain.Order, error) {
	lineRows, err := r.q.ListOrderLines(ctx, row.OrderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.ListOrderLines: %w", err)
	}

	order, err := mapOrderToDomain(row, lineRows)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapOrderToDomain: %w", err)
	}

	return order, nil
}

func mapOrderToDomain(row db.Order, lineRows []db.ListOrderLinesRow) (domain.Order, error) {
	status := domain.OrderStatus(row.Status)
	if !status.Valid() {
		return domain.Order{}, fmt.Errorf("status[%s] is not valid", row.Status)
	}

	parsedCurrency, err := currency.ParseISO(row.Currency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
	}

	money := func(amount decimal.Decimal) domain.Money {
		return domain.Money{Amount: amount, Currency: parsedCurrency}
	}

	lines := make([]domain.OrderLine, 0, len(lineRows))
	for _, l := range lineRows {
		lines = append(lines, domain.OrderLine{
			FoodID:    l.FoodID,
			FoodName:  l.FoodName,
			Quantity:  int(l.Quantity),
			UnitPrice: money(l.UnitPrice),
		})
	}

	return domain.Order{
		OrderID:   row.OrderID.String(),
		UserID:    row.UserID,
		Lines:     lines,
		Subtotal:  money(row.Subtotal),
		Tax:       money(row.Tax),
		Total:     money(row.Total),
		PromoCode: row.PromoCode.String,
		CreatedAt: row.OrderDate,
		Status:    status,
	}, nil
}
