package contact_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hoangson03112/VietXanh/internal/cart"
	"github.com/hoangson03112/VietXanh/internal/contact"
	contacterrors "github.com/hoangson03112/VietXanh/internal/contact/errors"
	"github.com/hoangson03112/VietXanh/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ==================== FAKE SERVICE ====================

type fakeContactService struct {
	submitFunc       func(ctx context.Context, req contact.SubmitRequest) (contact.ContactResponse, error)
	checkoutFunc     func(ctx context.Context, req contact.CheckoutRequest) (contact.ContactResponse, error)
	listFunc         func(ctx context.Context, req contact.ListRequest) ([]contact.ContactResponse, int64, error)
	detailFunc       func(ctx context.Context, contactID string) (contact.ContactResponse, error)
	updateStatusFunc func(ctx context.Context, contactID, status string) (contact.ContactResponse, error)
}

func (f *fakeContactService) Submit(ctx context.Context, req contact.SubmitRequest) (contact.ContactResponse, error) {
	if f.submitFunc != nil {
		return f.submitFunc(ctx, req)
	}
	return contact.ContactResponse{}, nil
}
func (f *fakeContactService) Checkout(ctx context.Context, req contact.CheckoutRequest) (contact.ContactResponse, error) {
	if f.checkoutFunc != nil {
		return f.checkoutFunc(ctx, req)
	}
	return contact.ContactResponse{}, nil
}
func (f *fakeContactService) List(ctx context.Context, req contact.ListRequest) ([]contact.ContactResponse, int64, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, req)
	}
	return []contact.ContactResponse{}, 0, nil
}
func (f *fakeContactService) Detail(ctx context.Context, contactID string) (contact.ContactResponse, error) {
	if f.detailFunc != nil {
		return f.detailFunc(ctx, contactID)
	}
	return contact.ContactResponse{}, nil
}
func (f *fakeContactService) UpdateStatus(ctx context.Context, contactID, status string) (contact.ContactResponse, error) {
	if f.updateStatusFunc != nil {
		return f.updateStatusFunc(ctx, contactID, status)
	}
	return contact.ContactResponse{}, nil
}

// ==================== HELPER FUNCTIONS ====================

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestContactHandler_Submit(t *testing.T) {
	t.Run("success_submit", func(t *testing.T) {
		svc := &fakeContactService{
			submitFunc: func(ctx context.Context, req contact.SubmitRequest) (contact.ContactResponse, error) {
				assert.Equal(t, "Nguyễn Văn A", req.Name)
				return contact.ContactResponse{ID: "c-1", Status: "NEW"}, nil
			},
		}

		h := contact.NewHandler(svc, nil)
		r := setupTestRouter()
		r.POST("/contact", h.Submit)

		body := `{"name":"Nguyễn Văn A","email":"a@example.com","message":"Xin chào"}`
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "c-1")
	})

	t.Run("invalid_payload", func(t *testing.T) {
		h := contact.NewHandler(&fakeContactService{}, nil)
		r := setupTestRouter()
		r.POST("/contact", h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":"A"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestContactHandler_Checkout(t *testing.T) {
	checkoutBody := `{
		"name": "Nguyễn Văn A",
		"email": "a@example.com",
		"products": [
			{"_id": "p1", "name": "Túi cuộn rút", "price": 20000, "image": "/product1.png", "quantity": 2}
		]
	}`

	t.Run("success_clears_session_cart", func(t *testing.T) {
		store := cart.NewStore(cart.NewMemoryStorage(), cart.NewLocalBus())
		session := store.ForSession("test-session")

		ctx := context.Background()
		_, err := session.Add(ctx, "p1", cart.Snapshot{Name: "Túi cuộn rút", Price: 20000, Image: "/product1.png"}, 2)
		assert.NoError(t, err)

		svc := &fakeContactService{
			checkoutFunc: func(ctx context.Context, req contact.CheckoutRequest) (contact.ContactResponse, error) {
				assert.Len(t, req.Products, 1)
				return contact.ContactResponse{ID: "c-2", Status: "NEW", Total: 40000}, nil
			},
		}

		h := contact.NewHandler(svc, store)
		r := setupTestRouter()
		r.POST("/contact/checkout", middleware.CartSession(), h.Checkout)

		req := httptest.NewRequest(http.MethodPost, "/contact/checkout", strings.NewReader(checkoutBody))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: middleware.CartSessionCookie, Value: "test-session"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		items, err := session.Load(ctx)
		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("empty_cart_rejected", func(t *testing.T) {
		svc := &fakeContactService{
			checkoutFunc: func(ctx context.Context, req contact.CheckoutRequest) (contact.ContactResponse, error) {
				return contact.ContactResponse{}, contacterrors.ErrEmptyOrder
			},
		}

		h := contact.NewHandler(svc, nil)
		r := setupTestRouter()
		r.POST("/contact/checkout", middleware.CartSession(), h.Checkout)

		body := `{"name":"A","email":"a@example.com","products":[]}`
		req := httptest.NewRequest(http.MethodPost, "/contact/checkout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestContactHandler_UpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeContactService{
			updateStatusFunc: func(ctx context.Context, contactID, status string) (contact.ContactResponse, error) {
				assert.Equal(t, "READ", status)
				return contact.ContactResponse{ID: contactID, Status: status}, nil
			},
		}

		h := contact.NewHandler(svc, nil)
		r := setupTestRouter()
		r.PUT("/contact/:contactId/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPut, "/contact/c-1/status", strings.NewReader(`{"status":"READ"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "READ")
	})

	t.Run("missing_status", func(t *testing.T) {
		h := contact.NewHandler(&fakeContactService{}, nil)
		r := setupTestRouter()
		r.PUT("/contact/:contactId/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPut, "/contact/c-1/status", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
