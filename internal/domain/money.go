package domain

import (
	"fmt"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultCurrency is the currency of the built-in catalog (Philippine peso).
var DefaultCurrency = currency.MustParseISO("PHP")

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount int64, cur currency.Unit) Money {
	return Money{Amount: decimal.NewFromInt(amount), Currency: cur}
}

func ZeroMoney(cur currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: cur}
}

// Add panics on mismatched currencies: carts and orders are single-currency.
func (m Money) Add(other Money) Money {
	if m.Currency != other.Currency {
		panic(fmt.Sprintf("money currency mismatch: %s != %s", m.Currency, other.Currency))
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor), Currency: m.Currency}
}

func (m Money) MulInt(n int) Money {
	return m.Mul(decimal.NewFromInt(int64(n)))
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// MarshalJSON writes the bare amount; the currency is implied by the order.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.Amount.MarshalJSON()
}

// String rounds to two places for display only.
func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency.String()
}
