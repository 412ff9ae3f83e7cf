package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// Order is the record written at checkout. Lines are copied by value from
// the cart, so later cart edits never reach a stored order.
type Order struct {
	OrderID   string      `json:"orderId"`
	UserID    string      `json:"userId"`
	Lines     []OrderLine `json:"items"`
	Subtotal  Money       `json:"subtotal"`
	Tax       Money       `json:"tax"`
	Total     Money       `json:"total"`
	PromoCode string      `json:"promoCode,omitempty"`
	CreatedAt time.Time   `json:"orderDate"`
	Status    OrderStatus `json:"status"`
}

type OrderLine struct {
	FoodID    string `json:"foodId"`
	FoodName  string `json:"foodName"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"price"`
}

func (l OrderLine) LineTotal() Money {
	return l.UnitPrice.MulInt(l.Quantity)
}

// LinesFromItems copies each selected item into an order line.
func LinesFromItems(items []SelectedItem) []OrderLine {
	lines := make([]OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, OrderLine{
			FoodID:    it.Item.ID,
			FoodName:  it.Item.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.Item.Price,
		})
	}
	return lines
}
