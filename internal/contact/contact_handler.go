package contact

import (
	"net/http"
	"strconv"

	"github.com/hoangson03112/VietXanh/internal/cart"
	"github.com/hoangson03112/VietXanh/internal/middleware"
	"github.com/hoangson03112/VietXanh/internal/pkg/apperror"
	"github.com/hoangson03112/VietXanh/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service   Service
	cartStore *cart.Store
	logger    *zap.Logger
}

func NewHandler(service Service, cartStore *cart.Store, logger ...*zap.Logger) *Handler {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contact.handler")
	}
	return &Handler{service: service, cartStore: cartStore, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid contact payload", err.Error())
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// Checkout persists the order and empties the session cart once the order is
// safely committed.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid order payload", err.Error())
		return
	}

	resp, err := h.service.Checkout(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.cartStore != nil {
		if session, ok := c.Get(middleware.CartSessionKey); ok {
			if err := h.cartStore.ForSession(session.(string)).Clear(c.Request.Context()); err != nil {
				h.logger.Warn("failed to clear cart after checkout",
					zap.String("session", session.(string)), zap.Error(err))
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := h.service.List(c.Request.Context(), ListRequest{
		Status: c.Query("status"),
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

func (h *Handler) Detail(c *gin.Context) {
	resp, err := h.service.Detail(c.Request.Context(), c.Param("contactId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid status payload", err.Error())
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), c.Param("contactId"), req.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
