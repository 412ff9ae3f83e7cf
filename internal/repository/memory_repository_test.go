package repository_test

import (
	"context"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/nikolayk812/foodorder-demo/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
	"time"
)

func TestMemoryOrder_StoreAndGet(t *testing.T) {
	repo := repository.NewMemoryOrder()
	ctx := t.Context()

	id, err := repo.NextID(ctx)
	require.NoError(t, err)

	order := randomOrder(id, gofakeit.UUID())
	require.NoError(t, repo.Store(ctx, order))

	stored, err := repo.GetOrder(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(order, stored, orderDiffOptions()))

	// the stored copy is detached from the caller's slice
	order.Lines[0].Quantity = 999
	stored, err = repo.GetOrder(ctx, id)
	require.NoError(t, err)
	assert.NotEqual(t, 999, stored.Lines[0].Quantity)

	require.ErrorIs(t, repo.Store(ctx, order), repository.ErrOrderAlreadyExists)

	_, err = repo.GetOrder(ctx, gofakeit.UUID())
	require.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestMemoryOrder_StoreErrors(t *testing.T) {
	repo := repository.NewMemoryOrder()

	err := repo.Store(t.Context(), randomOrder(gofakeit.UUID(), ""))
	require.EqualError(t, err, "userID is empty")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err = repo.NextID(ctx)
	require.ErrorIs(t, err, context.Canceled)

	err = repo.Store(ctx, randomOrder(gofakeit.UUID(), gofakeit.UUID()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemoryOrder_ListByUser(t *testing.T) {
	repo := repository.NewMemoryOrder()
	ctx := t.Context()
	userID := gofakeit.UUID()

	base := time.Now().UTC()
	var want []string
	for i := range 5 {
		order := randomOrder(gofakeit.UUID(), userID)
		order.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Store(ctx, order))
		want = append([]string{order.OrderID}, want...)
	}
	require.NoError(t, repo.Store(ctx, randomOrder(gofakeit.UUID(), gofakeit.UUID())))

	orders, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)

	var got []string
	for _, order := range orders {
		assert.Equal(t, userID, order.UserID)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
		got = append(got, order.OrderID)
	}
	assert.Equal(t, want, got)

	_, err = repo.ListByUser(ctx, "")
	require.EqualError(t, err, "userID is empty")
}

func TestMemoryOrder_ConcurrentStore(t *testing.T) {
	repo := repository.NewMemoryOrder()
	ctx := t.Context()
	userID := gofakeit.UUID()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := repo.NextID(ctx)
			assert.NoError(t, err)
			assert.NoError(t, repo.Store(ctx, randomOrder(id, userID)))
		}()
	}
	wg.Wait()

	orders, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, orders, 20)
}
