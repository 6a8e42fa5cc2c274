package cart_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hoangson03112/VietXanh/internal/cart"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ==================== HELPER FUNCTIONS ====================

func setupCartRouter() (*gin.Engine, *cart.Store) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	store := cart.NewStore(cart.NewMemoryStorage(), cart.NewLocalBus())
	handler := cart.NewHandler(store)

	api := router.Group("/api/v1")
	cart.RegisterRoutes(api, handler)

	return router, store
}

func withSession(req *http.Request) {
	req.AddCookie(&http.Cookie{
		Name:  "cart_session",
		Value: "test-session",
	})
}

type envelope struct {
	Success bool                    `json:"success"`
	Data    cart.CartDetailResponse `json:"data"`
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) cart.CartDetailResponse {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}

// ==================== TEST CASES ====================

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("success_creates_line_item", func(t *testing.T) {
		router, _ := setupCartRouter()

		body := `{"name":"Túi cuộn rút","price":20000,"image":"/product1.png","quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items/p1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		withSession(req)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		data := decodeDetail(t, w)
		assert.Len(t, data.Items, 1)
		assert.Equal(t, "p1", data.Items[0].ProductID)
		assert.Equal(t, 2, data.Items[0].Quantity)
		assert.Equal(t, float64(40000), data.Total)
	})

	t.Run("rejects_zero_quantity", func(t *testing.T) {
		router, _ := setupCartRouter()

		body := `{"name":"Túi cuộn rút","price":20000,"quantity":0}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items/p1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		withSession(req)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("mints_session_cookie_when_absent", func(t *testing.T) {
		router, _ := setupCartRouter()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		found := false
		for _, c := range w.Result().Cookies() {
			if c.Name == "cart_session" && c.Value != "" {
				found = true
			}
		}
		assert.True(t, found, "expected a cart_session cookie to be set")
	})
}

func TestCartHandler_UpdateQty(t *testing.T) {
	t.Run("clamps_at_one", func(t *testing.T) {
		router, store := setupCartRouter()

		session := store.ForSession("test-session")
		_, err := session.Add(context.Background(), "p1", cart.Snapshot{Name: "Túi cuộn rút", Price: 20000}, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/p1", strings.NewReader(`{"delta":-5}`))
		req.Header.Set("Content-Type", "application/json")
		withSession(req)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeDetail(t, w)
		assert.Equal(t, 1, data.Items[0].Quantity)
		assert.Equal(t, float64(20000), data.Total)
	})
}

func TestCartHandler_Detail(t *testing.T) {
	t.Run("empty_cart", func(t *testing.T) {
		router, _ := setupCartRouter()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		withSession(req)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeDetail(t, w)
		assert.Empty(t, data.Items)
		assert.Equal(t, float64(0), data.Total)
	})

	t.Run("sessions_are_isolated", func(t *testing.T) {
		router, store := setupCartRouter()

		_, err := store.ForSession("someone-else").Add(context.Background(), "p1", cart.Snapshot{Price: 20000}, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		withSession(req)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		data := decodeDetail(t, w)
		assert.Empty(t, data.Items)
	})
}

func TestCartHandler_Clear(t *testing.T) {
	router, store := setupCartRouter()

	session := store.ForSession("test-session")
	_, err := session.Add(context.Background(), "p1", cart.Snapshot{Price: 20000}, 2)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil)
	withSession(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	items, err := session.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartHandler_Count(t *testing.T) {
	router, store := setupCartRouter()

	session := store.ForSession("test-session")
	_, _ = session.Add(context.Background(), "p1", cart.Snapshot{}, 2)
	_, _ = session.Add(context.Background(), "p2", cart.Snapshot{}, 3)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart/count", nil)
	withSession(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data cart.CartCountResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 5, env.Data.Count)
}
