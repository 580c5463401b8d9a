package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontendlab/demo-backend/internal/pkg/memstore"
	"github.com/frontendlab/demo-backend/internal/product"
)

func newFixture(t *testing.T) (Service, product.Service, int) {
	t.Helper()

	products := memstore.NewCollection(
		func(p product.Product) int { return p.ID },
		func(p product.Product, id int) product.Product { p.ID = id; return p },
	)
	productSvc := product.NewService(product.NewMemRepository(products))
	p, err := productSvc.Create(context.Background(), product.CreateRequest{
		Name: "Laptop", Category: "Electronics", Price: 999.99, Stock: 5,
		Description: "High-performance laptop for work and gaming",
	})
	require.NoError(t, err)

	items := memstore.NewCollection(
		func(i Item) int { return i.ProductID },
		func(i Item, id int) Item { i.ProductID = id; return i },
	)
	return NewService(NewMemRepository(items), productSvc), productSvc, p.ID
}

func TestAddingSameProductTwiceMergesQuantity(t *testing.T) {
	svc, _, productID := newFixture(t)
	ctx := context.Background()

	first, err := svc.AddItem(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)

	second, err := svc.AddItem(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Quantity)

	v, err := svc.View(ctx)
	require.NoError(t, err)
	require.Len(t, v.Items, 1, "one line, not two")
	assert.Equal(t, 2, v.ItemCount)
	assert.InDelta(t, 1999.98, v.Total, 0.001)
}

func TestAddUnknownProductFails(t *testing.T) {
	svc, _, _ := newFixture(t)

	_, err := svc.AddItem(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartLineKeepsPriceFromAddTime(t *testing.T) {
	svc, productSvc, productID := newFixture(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, productID)
	require.NoError(t, err)

	newPrice := 1299.99
	_, err = productSvc.Update(ctx, productID, product.UpdateRequest{Price: &newPrice})
	require.NoError(t, err)

	v, err := svc.View(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 999.99, v.Items[0].Price, 0.001,
		"product fields are copied into the line when it is added")
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	svc, _, productID := newFixture(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, productID)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, productID))
	require.NoError(t, svc.RemoveItem(ctx, productID))

	v, err := svc.View(ctx)
	require.NoError(t, err)
	assert.Empty(t, v.Items)
	assert.Zero(t, v.Total)
}

func TestCheckoutReturnsTotalAndClearsCart(t *testing.T) {
	svc, _, productID := newFixture(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, productID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, productID)
	require.NoError(t, err)

	total, err := svc.Checkout(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1999.98, total, 0.001)

	v, err := svc.View(ctx)
	require.NoError(t, err)
	assert.Empty(t, v.Items)
}

func TestCheckoutEmptyCartIsRejected(t *testing.T) {
	svc, _, _ := newFixture(t)

	_, err := svc.Checkout(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCart)
}
