package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontendlab/demo-backend/internal/pkg/memstore"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	products := memstore.NewCollection(
		func(p Product) int { return p.ID },
		func(p Product, id int) Product { p.ID = id; return p },
	)
	svc := NewService(NewMemRepository(products))

	ctx := context.Background()
	seed := []CreateRequest{
		{Name: "Wireless Headphones", Category: "Electronics", Price: 99.99, Stock: 45},
		{Name: "Running Shoes", Category: "Sports", Price: 79.99, Stock: 60},
		{Name: "Coffee Maker", Category: "Home", Price: 129.99, Stock: 25},
	}
	for _, req := range seed {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}
	return svc
}

func TestSearchMatchesNameOrCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	byName, err := svc.Search(ctx, "headphones")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Wireless Headphones", byName[0].Name)

	byCategory, err := svc.Search(ctx, "SPORTS")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Running Shoes", byCategory[0].Name)

	all, err := svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := svc.Search(ctx, "garden")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Category: "Home", Price: 10})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, CreateRequest{Name: "Lamp", Price: 10})
	assert.ErrorIs(t, err, ErrCategoryRequired)

	_, err = svc.Create(ctx, CreateRequest{Name: "Lamp", Category: "Home", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.Create(ctx, CreateRequest{Name: "Lamp", Category: "Home", Stock: -1})
	assert.ErrorIs(t, err, ErrInvalidStock)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	stock := 10
	updated, err := svc.Update(ctx, 3, UpdateRequest{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Stock)
	assert.Equal(t, "Coffee Maker", updated.Name, "untouched fields survive")

	price := -5.0
	_, err = svc.Update(ctx, 3, UpdateRequest{Price: &price})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.Update(ctx, 999, UpdateRequest{Stock: &stock})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteThenGetReturnsNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 2))

	_, err := svc.GetByID(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, svc.Delete(ctx, 2))
}
