package domain

import (
	"errors"
	"fmt"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrCurrencyMismatch = errors.New("item currency does not match cart currency")

// DefaultTaxRate is the 12% VAT applied at checkout.
var DefaultTaxRate = decimal.RequireFromString("0.12")

// Cart holds the items selected during a session. Entries are unique by
// FoodItem ID and always have a quantity of at least 1.
//
// Cart is not safe for concurrent use; a session mutates it from one goroutine.
type Cart struct {
	items    []SelectedItem
	taxRate  decimal.Decimal
	currency currency.Unit

	subscribers map[int]func(CartSnapshot)
	nextSubID   int
}

type CartOption func(*Cart)

func WithTaxRate(rate decimal.Decimal) CartOption {
	return func(c *Cart) {
		c.taxRate = rate
	}
}

func WithCurrency(cur currency.Unit) CartOption {
	return func(c *Cart) {
		c.currency = cur
	}
}

func NewCart(opts ...CartOption) *Cart {
	c := &Cart{
		taxRate:     DefaultTaxRate,
		currency:    DefaultCurrency,
		subscribers: make(map[int]func(CartSnapshot)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Toggle selects the item with quantity 1, or deselects it if already present.
// Selecting an item priced in another currency fails with ErrCurrencyMismatch
// and leaves the cart unchanged.
func (c *Cart) Toggle(item FoodItem) error {
	if i := c.indexOf(item.ID); i >= 0 {
		c.removeAt(i)
	} else {
		if item.Price.Currency != c.currency {
			return fmt.Errorf("food[%s] priced in %s, cart in %s: %w",
				item.ID, item.Price.Currency, c.currency, ErrCurrencyMismatch)
		}
		c.items = append(c.items, SelectedItem{Item: item, Quantity: 1})
	}
	c.notify()
	return nil
}

// SetQuantity is a no-op for unknown ids. Quantities below 1 are clamped to 1;
// use Toggle or Remove to drop an item.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	i := c.indexOf(itemID)
	if i < 0 {
		return
	}
	c.items[i].Quantity = max(quantity, 1)
	c.notify()
}

func (c *Cart) Increment(itemID string) {
	if i := c.indexOf(itemID); i >= 0 {
		c.SetQuantity(itemID, c.items[i].Quantity+1)
	}
}

func (c *Cart) Decrement(itemID string) {
	if i := c.indexOf(itemID); i >= 0 {
		c.SetQuantity(itemID, c.items[i].Quantity-1)
	}
}

// Remove reports whether the item was in the cart.
func (c *Cart) Remove(itemID string) bool {
	i := c.indexOf(itemID)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	c.notify()
	return true
}

func (c *Cart) Clear() {
	c.items = nil
	c.notify()
}

func (c *Cart) Contains(itemID string) bool {
	return c.indexOf(itemID) >= 0
}

func (c *Cart) Quantity(itemID string) int {
	if i := c.indexOf(itemID); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a copy in selection order.
func (c *Cart) Items() []SelectedItem {
	out := make([]SelectedItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) TaxRate() decimal.Decimal {
	return c.taxRate
}

func (c *Cart) Currency() currency.Unit {
	return c.currency
}

// Subtotal is the sum of unit price times quantity over all entries.
func (c *Cart) Subtotal() Money {
	sum := ZeroMoney(c.currency)
	for _, it := range c.items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

func (c *Cart) Tax() Money {
	return c.TaxAt(c.taxRate)
}

func (c *Cart) TaxAt(rate decimal.Decimal) Money {
	return c.Subtotal().Mul(rate)
}

func (c *Cart) Total() Money {
	subtotal := c.Subtotal()
	return subtotal.Add(subtotal.Mul(c.taxRate))
}

// CartSnapshot is an immutable view of the cart and its derived totals.
type CartSnapshot struct {
	Items    []SelectedItem
	Subtotal Money
	Tax      Money
	Total    Money
	TaxRate  decimal.Decimal
}

func (s CartSnapshot) IsEmpty() bool {
	return len(s.Items) == 0
}

func (c *Cart) Snapshot() CartSnapshot {
	subtotal := c.Subtotal()
	tax := subtotal.Mul(c.taxRate)

	return CartSnapshot{
		Items:    c.Items(),
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
		TaxRate:  c.taxRate,
	}
}

// Subscribe registers fn to be called synchronously after every change.
// The returned func removes the subscription.
func (c *Cart) Subscribe(fn func(CartSnapshot)) (unsubscribe func()) {
	if c.subscribers == nil {
		c.subscribers = make(map[int]func(CartSnapshot))
	}
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn

	return func() {
		delete(c.subscribers, id)
	}
}

func (c *Cart) notify() {
	if len(c.subscribers) == 0 {
		return
	}

	snap := c.Snapshot()
	for _, fn := range c.subscribers {
		fn(snap)
	}
}

func (c *Cart) indexOf(itemID string) int {
	for i, it := range c.items {
		if it.Item.ID == itemID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.items = append(c.items[:i], c.items[i+1:]...)
}
