package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontendlab/demo-backend/internal/pkg/memstore"
	"github.com/frontendlab/demo-backend/internal/product"
	"github.com/frontendlab/demo-backend/internal/user"
)

type fixture struct {
	svc        Service
	userSvc    user.Service
	productSvc product.Service
	userID     int
	productID  int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	users := memstore.NewCollection(
		func(u user.User) int { return u.ID },
		func(u user.User, id int) user.User { u.ID = id; return u },
	)
	userSvc := user.NewService(user.NewMemRepository(users))
	u, err := userSvc.Create(ctx, user.CreateRequest{
		Name: "Alice Johnson", Email: "alice@example.com", Role: "customer",
	})
	require.NoError(t, err)

	products := memstore.NewCollection(
		func(p product.Product) int { return p.ID },
		func(p product.Product, id int) product.Product { p.ID = id; return p },
	)
	productSvc := product.NewService(product.NewMemRepository(products))
	p, err := productSvc.Create(ctx, product.CreateRequest{
		Name: "Laptop Pro", Category: "electronics", Price: 999.99, Stock: 15,
	})
	require.NoError(t, err)

	orders := memstore.NewCollection(
		func(o Order) int { return o.ID },
		func(o Order, id int) Order { o.ID = id; return o },
	)
	return &fixture{
		svc:        NewService(NewMemRepository(orders), userSvc, productSvc),
		userSvc:    userSvc,
		productSvc: productSvc,
		userID:     u.ID,
		productID:  p.ID,
	}
}

func TestCreatePricesFromProduct(t *testing.T) {
	f := newFixture(t)

	o, err := f.svc.Create(context.Background(), CreateRequest{
		UserID: f.userID, ProductID: f.productID, Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1999.98, o.Total)
	assert.Equal(t, StatusPending, o.Status)
	assert.NotEmpty(t, o.Date)
}

func TestCreateValidatesReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, CreateRequest{UserID: 99, ProductID: f.productID, Quantity: 1})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = f.svc.Create(ctx, CreateRequest{UserID: f.userID, ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = f.svc.Create(ctx, CreateRequest{UserID: f.userID, ProductID: f.productID, Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestStatusCyclesBackToPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	o, err := f.svc.Create(ctx, CreateRequest{UserID: f.userID, ProductID: f.productID, Quantity: 1})
	require.NoError(t, err)
	require.Equal(t, StatusPending, o.Status)

	want := []Status{StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled, StatusPending}
	for _, expected := range want {
		o, err = f.svc.AdvanceStatus(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, expected, o.Status)
	}
}

func TestListJoinsNamesAtRenderTime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, CreateRequest{UserID: f.userID, ProductID: f.productID, Quantity: 1})
	require.NoError(t, err)

	views, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Alice Johnson", views[0].CustomerName)
	assert.Equal(t, "Laptop Pro", views[0].ProductName)

	// Renaming the customer shows up on the next render: names are joined
	// live, not copied at order time.
	newName := "Alice J."
	_, err = f.userSvc.Update(ctx, f.userID, user.UpdateRequest{Name: &newName})
	require.NoError(t, err)

	views, err = f.svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice J.", views[0].CustomerName)
}

func TestDeletedReferenceRendersUnknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, CreateRequest{UserID: f.userID, ProductID: f.productID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, f.userSvc.Delete(ctx, f.userID))

	views, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1, "the row is kept, not dropped")
	assert.Equal(t, UnknownName, views[0].CustomerName)
	assert.Equal(t, "Laptop Pro", views[0].ProductName)
}

func TestRevenueIncludesCancelledOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, CreateRequest{UserID: f.userID, ProductID: f.productID, Quantity: 1})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, CreateRequest{UserID: f.userID, ProductID: f.productID, Quantity: 1})
	require.NoError(t, err)

	// Walk the first order to cancelled.
	for i := 0; i < 4; i++ {
		_, err = f.svc.AdvanceStatus(ctx, first.ID)
		require.NoError(t, err)
	}
	got, err := f.svc.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, got.Status)

	revenue, err := f.svc.Revenue(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1999.98, revenue, 0.001, "cancelled orders still count")
}
