package product

import (
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
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("q")

	items, total, err := h.service.List(c.Request.Context(), ListRequest{
		Search: search,
		Page:   page,
		Limit:  limit,
	})
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
	item, err := h.service.Detail(c.Request.Context(), c.Param("productId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

// AdminList returns every product, hidden ones included, for the admin panel.
func (h *Handler) AdminList(c *gin.Context) {
	items, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

// Create consumes the admin panel's multipart form: text fields plus any number
// of "images" files.
func (h *Handler) Create(c *gin.Context) {
	req, err := h.bindMultipart(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid product form", err.Error())
		return
	}
	if req.Name == "" {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Product name is required", nil)
		return
	}

	item, err := h.service.Create(c.Request.Context(), *req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item, nil)
}

func (h *Handler) Update(c *gin.Context) {
	req, err := h.bindMultipart(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid product form", err.Error())
		return
	}

	item, err := h.service.Update(c.Request.Context(), c.Param("productId"), UpdateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Featured:    req.Featured,
		Images:      req.Images,
		KeptImage:   c.PostFormArray("keptImages"),
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) ToggleActive(c *gin.Context) {
	item, err := h.service.ToggleActive(c.Request.Context(), c.Param("productId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) ToggleFeatured(c *gin.Context) {
	item, err := h.service.ToggleFeatured(c.Request.Context(), c.Param("productId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("productId")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil, nil)
}

func (h *Handler) bindMultipart(c *gin.Context) (*CreateProductRequest, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	stock, _ := strconv.Atoi(c.PostForm("stock"))
	featured := c.PostForm("featured") == "true"

	return &CreateProductRequest{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Stock:       int32(stock),
		Featured:    featured,
		Images:      form.File["images"],
	}, nil
}
