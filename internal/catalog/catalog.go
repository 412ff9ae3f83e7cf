package catalog

import (
	"fmt"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"golang.org/x/text/currency"
)

// Catalog is an ordered, read-only list of food items.
type Catalog struct {
	items []domain.FoodItem
	byID  map[string]int
}

func New(items ...domain.FoodItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]domain.FoodItem, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}

	for _, item := range items {
		if item.ID == "" {
			return nil, domain.ErrEmptyFoodID
		}
		if _, exists := c.byID[item.ID]; exists {
			return nil, fmt.Errorf("food[%s] is duplicated", item.ID)
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}

	return c, nil
}

var defaultMenu = []struct {
	id       string
	price    int64
	category string
}{
	{"Hawaiian Pizza", 250, "Pizza"},
	{"Chicken Burger", 135, "Burger"},
	{"Chicken Pizza", 220, "Pizza"},
	{"Beef Burger", 145, "Burger"},
	{"Cheese Pizza", 280, "Pizza"},
	{"Cheese Burger", 120, "Burger"},
	{"Spaghetti", 135, "Pasta"},
	{"Carbonara", 145, "Pasta"},
}

// Default returns the built-in menu priced in domain.DefaultCurrency.
func Default() *Catalog {
	return DefaultIn(domain.DefaultCurrency)
}

func DefaultIn(cur currency.Unit) *Catalog {
	items := make([]domain.FoodItem, 0, len(defaultMenu))
	for _, m := range defaultMenu {
		item, err := domain.NewFoodItem(m.id, "", domain.NewMoney(m.price, cur), m.category)
		if err != nil {
			panic(err)
		}
		items = append(items, item)
	}

	c, err := New(items...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Items() []domain.FoodItem {
	out := make([]domain.FoodItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Lookup(id string) (domain.FoodItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.FoodItem{}, false
	}
	return c.items[i], true
}

// ByCategory filters in catalog order. An empty category matches everything.
func (c *Catalog) ByCategory(category string) []domain.FoodItem {
	if category == "" {
		return c.Items()
	}

	var out []domain.FoodItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Categories lists distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range c.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.items)
}
