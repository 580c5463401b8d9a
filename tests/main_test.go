package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/frontendlab/demo-backend/internal/app"
	"github.com/frontendlab/demo-backend/internal/dataset"
)

const (
	currentUserID   = 1
	currentUserName = "John Doe"
)

func TestMain(m *testing.M) {
	// Setup Gin mode
	gin.SetMode(gin.TestMode)

	// Run Tests
	os.Exit(m.Run())
}

// newRouter builds a fresh application seeded with the sample dataset.
// Every test gets its own store, so there is no cross-test cleanup.
func newRouter() *gin.Engine {
	container := app.NewContainer(app.Config{
		Dataset:         dataset.Sample(),
		CurrentUserID:   currentUserID,
		CurrentUserName: currentUserName,
	})
	return container.Router
}

func executeRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

// listBody matches the standard list envelope.
type listBody struct {
	Items []map[string]any `json:"items"`
	Total int              `json:"total"`
}
