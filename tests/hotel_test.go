package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelListAndSearch(t *testing.T) {
	router := newRouter()

	w := executeRequest(router, http.MethodGet, "/v1/hotels", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body listBody
	decodeJSON(t, w, &body)
	assert.Equal(t, 4, body.Total)

	// Case-insensitive substring match on name and location.
	w = executeRequest(router, http.MethodGet, "/v1/hotels?q=PARIS", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &body)
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "Grand Palace Hotel", body.Items[0]["name"])

	// No match yields an empty list, not an error.
	w = executeRequest(router, http.MethodGet, "/v1/hotels?q=atlantis", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &body)
	assert.Equal(t, 0, body.Total)
	assert.NotNil(t, body.Items)
}

func TestHotelCreateAndGet(t *testing.T) {
	router := newRouter()

	w := executeRequest(router, http.MethodPost, "/v1/hotels", map[string]any{
		"name":            "Harbor House",
		"location":        "Lisbon, Portugal",
		"rating":          4,
		"price_per_night": 190.0,
		"amenities":       []string{"WiFi"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	decodeJSON(t, w, &created)
	assert.Equal(t, float64(5), created["id"]) // four seeded hotels before it

	w = executeRequest(router, http.MethodGet, "/v1/hotels/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHotelValidationFailure(t *testing.T) {
	router := newRouter()

	w := executeRequest(router, http.MethodPost, "/v1/hotels", map[string]any{
		"name":     "No Rating",
		"location": "Nowhere",
		"rating":   9,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHotelUpdateAndDelete(t *testing.T) {
	router := newRouter()

	w := executeRequest(router, http.MethodPatch, "/v1/hotels/2", map[string]any{
		"price_per_night": 300.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated map[string]any
	decodeJSON(t, w, &updated)
	assert.Equal(t, 300.0, updated["price_per_night"])
	assert.Equal(t, "Seaside Resort", updated["name"])

	w = executeRequest(router, http.MethodDelete, "/v1/hotels/2", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = executeRequest(router, http.MethodGet, "/v1/hotels/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Deleting an absent hotel is a silent no-op.
	w = executeRequest(router, http.MethodDelete, "/v1/hotels/2", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
