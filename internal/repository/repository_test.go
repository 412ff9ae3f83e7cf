package repository_test

import (
	"context"
	"fmt"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
	"time"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_orders.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

// randomOrder builds a pending order whose totals are consistent with its lines.
func randomOrder(orderID, userID string) domain.Order {
	cur := randomCurrency()
	subtotal := domain.ZeroMoney(cur)

	lines := make([]domain.OrderLine, gofakeit.Number(1, 4))
	for i := range lines {
		name := gofakeit.Dessert()
		lines[i] = domain.OrderLine{
			FoodID:    fmt.Sprintf("%s-%d", name, i),
			FoodName:  name,
			Quantity:  gofakeit.Number(1, 9),
			UnitPrice: domain.NewMoney(int64(gofakeit.Number(0, 500)), cur),
		}
		subtotal = subtotal.Add(lines[i].LineTotal())
	}

	tax := subtotal.Mul(domain.DefaultTaxRate)

	return domain.Order{
		OrderID:   orderID,
		UserID:    userID,
		Lines:     lines,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal.Add(tax),
		CreatedAt: time.Now().Add(-time.Duration(gofakeit.Number(1, 500_000)) * time.Minute).UTC(),
		Status:    domain.OrderStatusPending,
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

func orderDiffOptions() cmp.Options {
	return cmp.Options{
		cmp.Comparer(func(x, y currency.Unit) bool {
			return x.String() == y.String()
		}),
		cmp.Comparer(func(x, y decimal.Decimal) bool {
			return x.Equal(y)
		}),
		// PostgreSQL keeps microseconds only
		cmpopts.EquateApproxTime(time.Microsecond),
	}
}
