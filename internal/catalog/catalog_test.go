package catalog_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/foodorder-demo/internal/catalog"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"testing"
)

func TestDefault(t *testing.T) {
	menu := catalog.Default()

	require.Equal(t, 8, menu.Len())
	assert.Equal(t, []string{"Pizza", "Burger", "Pasta"}, menu.Categories())

	item, ok := menu.Lookup("Hawaiian Pizza")
	require.True(t, ok)
	assert.Equal(t, "250", item.Price.Amount.String())
	assert.Equal(t, domain.DefaultCurrency, item.Price.Currency)
	assert.Equal(t, "Pizza", item.Category)

	_, ok = menu.Lookup("hawaiian pizza")
	assert.False(t, ok)
}

func TestDefaultIn(t *testing.T) {
	menu := catalog.DefaultIn(currency.USD)

	for _, item := range menu.Items() {
		assert.Equal(t, currency.USD, item.Price.Currency)
	}
}

func TestByCategory(t *testing.T) {
	menu := catalog.Default()

	tests := []struct {
		name     string
		category string
		wantIDs  []string
	}{
		{
			name:     "pasta",
			category: "Pasta",
			wantIDs:  []string{"Spaghetti", "Carbonara"},
		},
		{
			name:     "burgers keep menu order",
			category: "Burger",
			wantIDs:  []string{"Chicken Burger", "Beef Burger", "Cheese Burger"},
		},
		{
			name:     "unknown category",
			category: "Sushi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, item := range menu.ByCategory(tt.category) {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	assert.Len(t, menu.ByCategory(""), menu.Len())
}

func TestNew_RejectsDuplicates(t *testing.T) {
	id := gofakeit.Word()
	item, err := domain.NewFoodItem(id, "", domain.NewMoney(10, domain.DefaultCurrency), "Snacks")
	require.NoError(t, err)

	_, err = catalog.New(item, item)
	require.EqualError(t, err, "food["+id+"] is duplicated")
}

func TestItems_ReturnsCopy(t *testing.T) {
	menu := catalog.Default()

	items := menu.Items()
	items[0].ID = "mutated"

	_, ok := menu.Lookup("Hawaiian Pizza")
	assert.True(t, ok)
	assert.Equal(t, "Hawaiian Pizza", menu.Items()[0].ID)
}
