package blog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hoangson03112/VietXanh/internal/blog"
	blogerrors "github.com/hoangson03112/VietXanh/internal/blog/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ==================== FAKE SERVICE ====================

type fakeBlogService struct {
	listFunc         func(ctx context.Context, req blog.ListRequest) ([]blog.BlogResponse, int64, error)
	listFeaturedFunc func(ctx context.Context) ([]blog.BlogResponse, error)
	detailFunc       func(ctx context.Context, blogID string) (blog.BlogResponse, error)
	listAllFunc      func(ctx context.Context) ([]blog.BlogResponse, error)
	createFunc       func(ctx context.Context, req blog.CreateBlogRequest) (blog.BlogResponse, error)
	updateFunc       func(ctx context.Context, blogID string, req blog.UpdateBlogRequest) (blog.BlogResponse, error)
	toggleActiveFunc func(ctx context.Context, blogID string) (blog.BlogResponse, error)
	deleteFunc       func(ctx context.Context, blogID string) error
}

func (f *fakeBlogService) List(ctx context.Context, req blog.ListRequest) ([]blog.BlogResponse, int64, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, req)
	}
	return []blog.BlogResponse{}, 0, nil
}
func (f *fakeBlogService) ListFeatured(ctx context.Context) ([]blog.BlogResponse, error) {
	if f.listFeaturedFunc != nil {
		return f.listFeaturedFunc(ctx)
	}
	return []blog.BlogResponse{}, nil
}
func (f *fakeBlogService) Detail(ctx context.Context, blogID string) (blog.BlogResponse, error) {
	if f.detailFunc != nil {
		return f.detailFunc(ctx, blogID)
	}
	return blog.BlogResponse{}, nil
}
func (f *fakeBlogService) ListAll(ctx context.Context) ([]blog.BlogResponse, error) {
	if f.listAllFunc != nil {
		return f.listAllFunc(ctx)
	}
	return []blog.BlogResponse{}, nil
}
func (f *fakeBlogService) Create(ctx context.Context, req blog.CreateBlogRequest) (blog.BlogResponse, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, req)
	}
	return blog.BlogResponse{}, nil
}
func (f *fakeBlogService) Update(ctx context.Context, blogID string, req blog.UpdateBlogRequest) (blog.BlogResponse, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, blogID, req)
	}
	return blog.BlogResponse{}, nil
}
func (f *fakeBlogService) ToggleActive(ctx context.Context, blogID string) (blog.BlogResponse, error) {
	if f.toggleActiveFunc != nil {
		return f.toggleActiveFunc(ctx, blogID)
	}
	return blog.BlogResponse{}, nil
}
func (f *fakeBlogService) Delete(ctx context.Context, blogID string) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, blogID)
	}
	return nil
}

// ==================== HELPER FUNCTIONS ====================

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestBlogHandler_List(t *testing.T) {
	t.Run("success_with_pagination", func(t *testing.T) {
		svc := &fakeBlogService{
			listFunc: func(ctx context.Context, req blog.ListRequest) ([]blog.BlogResponse, int64, error) {
				assert.Equal(t, 2, req.Page)
				assert.Equal(t, 5, req.Limit)
				return []blog.BlogResponse{{ID: "b-1", Title: "Sống xanh mỗi ngày"}}, 11, nil
			},
		}

		h := blog.NewHandler(svc)
		r := setupTestRouter()
		r.GET("/blogs", h.List)

		req := httptest.NewRequest(http.MethodGet, "/blogs?page=2&limit=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Sống xanh mỗi ngày")
		assert.Contains(t, w.Body.String(), `"totalItems":11`)
	})

	t.Run("service_error", func(t *testing.T) {
		svc := &fakeBlogService{
			listFunc: func(ctx context.Context, req blog.ListRequest) ([]blog.BlogResponse, int64, error) {
				return nil, 0, errors.New("db down")
			},
		}

		h := blog.NewHandler(svc)
		r := setupTestRouter()
		r.GET("/blogs", h.List)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blogs", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestBlogHandler_Detail(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		svc := &fakeBlogService{
			detailFunc: func(ctx context.Context, blogID string) (blog.BlogResponse, error) {
				return blog.BlogResponse{}, blogerrors.ErrBlogNotFound
			},
		}

		h := blog.NewHandler(svc)
		r := setupTestRouter()
		r.GET("/blogs/:blogId", h.Detail)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blogs/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBlogHandler_AdminList(t *testing.T) {
	t.Run("returns_hidden_posts_too", func(t *testing.T) {
		svc := &fakeBlogService{
			listAllFunc: func(ctx context.Context) ([]blog.BlogResponse, error) {
				return []blog.BlogResponse{
					{ID: "b-1", Title: "Shown", IsActive: true},
					{ID: "b-2", Title: "Hidden", IsActive: false},
				}, nil
			},
		}

		h := blog.NewHandler(svc)
		r := setupTestRouter()
		r.GET("/blogs/admin/all", h.AdminList)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blogs/admin/all", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Hidden")
	})
}

func TestBlogHandler_ToggleActive(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeBlogService{
			toggleActiveFunc: func(ctx context.Context, blogID string) (blog.BlogResponse, error) {
				assert.Equal(t, "b-1", blogID)
				return blog.BlogResponse{ID: "b-1", IsActive: false}, nil
			},
		}

		h := blog.NewHandler(svc)
		r := setupTestRouter()
		r.PUT("/blogs/:blogId/toggle-status", h.ToggleActive)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/blogs/b-1/toggle-status", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"isActive":false`)
	})
}

func TestBlogHandler_Create(t *testing.T) {
	t.Run("missing_title_rejected", func(t *testing.T) {
		h := blog.NewHandler(&fakeBlogService{})
		r := setupTestRouter()
		r.POST("/blogs", h.Create)

		form := strings.NewReader("content=abc")
		req := httptest.NewRequest(http.MethodPost, "/blogs", form)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success_without_image", func(t *testing.T) {
		svc := &fakeBlogService{
			createFunc: func(ctx context.Context, req blog.CreateBlogRequest) (blog.BlogResponse, error) {
				assert.Equal(t, "Sống xanh", req.Title)
				assert.Nil(t, req.Image)
				return blog.BlogResponse{ID: "b-9", Title: req.Title}, nil
			},
		}

		h := blog.NewHandler(svc)
		r := setupTestRouter()
		r.POST("/blogs", h.Create)

		form := strings.NewReader("title=S%E1%BB%91ng%20xanh&content=abc&author=Admin")
		req := httptest.NewRequest(http.MethodPost, "/blogs", form)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "b-9")
	})
}
