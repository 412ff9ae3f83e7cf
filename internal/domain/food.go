package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyFoodID   = errors.New("food id is empty")
	ErrInvalidPrice  = errors.New("invalid price")
	ErrEmptyCategory = errors.New("category is empty")
)

// FoodItem is a catalog entry. It is created once at startup and never mutated.
type FoodItem struct {
	ID       string
	Name     string
	Price    Money
	Category string
}

// NewFoodItem validates a catalog entry. Name defaults to the id, which is
// how the menu labels its items.
func NewFoodItem(id, name string, price Money, category string) (FoodItem, error) {
	if id == "" {
		return FoodItem{}, ErrEmptyFoodID
	}
	if category == "" {
		return FoodItem{}, fmt.Errorf("food[%s]: %w", id, ErrEmptyCategory)
	}
	if price.Amount.IsNegative() {
		return FoodItem{}, fmt.Errorf("food[%s] price %s is negative: %w", id, price.Amount, ErrInvalidPrice)
	}
	if !price.Amount.IsInteger() {
		return FoodItem{}, fmt.Errorf("food[%s] price %s is not whole: %w", id, price.Amount, ErrInvalidPrice)
	}
	if name == "" {
		name = id
	}

	return FoodItem{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: category,
	}, nil
}

type SelectedItem struct {
	Item     FoodItem
	Quantity int
}

func (s SelectedItem) LineTotal() Money {
	return s.Item.Price.MulInt(s.Quantity)
}
