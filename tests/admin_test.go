package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductSearch(t *testing.T) {
	router := newRouter()

	w := executeRequest(router, http.MethodGet, "/v1/products?q=sports", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body listBody
	decodeJSON(t, w, &body)
	require.Equal(t, 2, body.Total)
	assert.Equal(t, "Running Shoes", body.Items[0]["name"])
	assert.Equal(t, "Yoga Mat", body.Items[1]["name"])
}

func TestProductCRUD(t *testing.T) {
	router := newRouter()

	w := executeRequest(router, http.MethodPost, "/v1/products", map[string]any{
		"name":     "Water Bottle",
		"category": "Sports",
		"price":    14.99,
		"stock":    200,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	decodeJSON(t, w, &created)
	id := created["id"]
	assert.Equal(t, float64(7), id) // six seeded products before it

	w = executeRequest(router, http.MethodPatch, "/v1/products/7", map[string]any{
		"stock": 150,
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &created)
	assert.Equal(t, float64(150), created["stock"])
	assert.Equal(t, "Water Bottle", created["name"])

	w = executeRequest(router, http.MethodDelete, "/v1/products/7", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = executeRequest(router, http.MethodGet, "/v1/products/7", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserCreateAssignsJoinDate(t *testing.T) {
	router := newRouter()

	w := executeRequest(router, http.MethodPost, "/v1/users", map[string]any{
		"name":  "Tom Gray",
		"email": "tom@example.com",
		"role":  "Customer",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	decodeJSON(t, w, &created)
	assert.NotEmpty(t, created["join_date"])
}

func TestOrderCreatePricesFromProduct(t *testing.T) {
	router := newRouter()

	w := executeRequest(router, http.MethodPost, "/v1/orders", map[string]any{
		"user_id":    2,
		"product_id": 3,
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	decodeJSON(t, w, &created)
	assert.InDelta(t, 159.98, created["total"], 0.001) // 2 x 79.99
	assert.Equal(t, "pending", created["status"])
}

func TestOrderCreateRejectsUnknownReferences(t *testing.T) {
	router := newRouter()

	w := executeRequest(router, http.MethodPost, "/v1/orders", map[string]any{
		"user_id":    999,
		"product_id": 1,
		"quantity":   1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = executeRequest(router, http.MethodPost, "/v1/orders", map[string]any{
		"user_id":    2,
		"product_id": 999,
		"quantity":   1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderListJoinsNamesAtRenderTime(t *testing.T) {
	router := newRouter()

	w := executeRequest(router, http.MethodGet, "/v1/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body listBody
	decodeJSON(t, w, &body)
	require.Equal(t, 4, body.Total)
	assert.Equal(t, "Jane Smith", body.Items[0]["customer_name"])
	assert.Equal(t, "Wireless Headphones", body.Items[0]["product_name"])

	// Deleting the customer keeps the order but renders a placeholder name.
	w = executeRequest(router, http.MethodDelete, "/v1/users/2", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = executeRequest(router, http.MethodGet, "/v1/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &body)
	require.Equal(t, 4, body.Total)
	assert.Equal(t, "Unknown", body.Items[0]["customer_name"])
	assert.Equal(t, "Wireless Headphones", body.Items[0]["product_name"])
}

func TestOrderAdvanceStatusCycles(t *testing.T) {
	router := newRouter()

	want := []string{"processing", "shipped", "delivered", "cancelled", "pending"}
	for _, expected := range want {
		w := executeRequest(router, http.MethodPost, "/v1/orders/3/advance-status", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var updated map[string]any
		decodeJSON(t, w, &updated)
		assert.Equal(t, expected, updated["status"])
	}
}

func TestDashboardStats(t *testing.T) {
	router := newRouter()

	w := executeRequest(router, http.MethodGet, "/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]any
	decodeJSON(t, w, &stats)
	assert.Equal(t, float64(6), stats["total_products"])
	assert.Equal(t, float64(4), stats["total_users"])
	assert.Equal(t, float64(4), stats["total_orders"])
	// Revenue counts every order, cancelled ones included.
	assert.InDelta(t, 809.95, stats["total_revenue"], 0.001)
}
