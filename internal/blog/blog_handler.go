package blog

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/hoangson03112/VietXanh/internal/pkg/apperror"
	"github.com/hoangson03112/VietXanh/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	items, total, err := h.service.List(c.Request.Context(), ListRequest{Page: page, Limit: limit})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	pag := response.NewPagination(page, limit, total)
	response.Success(c, http.StatusOK, items, &pag)
}

func (h *Handler) Featured(c *gin.Context) {
	items, err := h.service.ListFeatured(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) Detail(c *gin.Context) {
	item, err := h.service.Detail(c.Request.Context(), c.Param("blogId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

// AdminList returns every post, hidden ones included, for the admin panel.
func (h *Handler) AdminList(c *gin.Context) {
	items, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func blogImage(c *gin.Context) *multipart.FileHeader {
	header, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return header
}

func (h *Handler) Create(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" || content == "" {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Title and content are required", nil)
		return
	}

	item, err := h.service.Create(c.Request.Context(), CreateBlogRequest{
		Title:    title,
		Content:  content,
		Author:   c.PostForm("author"),
		Featured: c.PostForm("featured") == "true",
		Image:    blogImage(c),
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item, nil)
}

func (h *Handler) Update(c *gin.Context) {
	item, err := h.service.Update(c.Request.Context(), c.Param("blogId"), UpdateBlogRequest{
		Title:    c.PostForm("title"),
		Content:  c.PostForm("content"),
		Author:   c.PostForm("author"),
		Featured: c.PostForm("featured") == "true",
		Image:    blogImage(c),
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) ToggleActive(c *gin.Context) {
	item, err := h.service.ToggleActive(c.Request.Context(), c.Param("blogId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("blogId")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil, nil)
}
