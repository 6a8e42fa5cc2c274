package cart

import (
	"io"
	"net/http"
	"time"

	carterrors "github.com/hoangson03112/VietXanh/internal/cart/errors"
	"github.com/hoangson03112/VietXanh/internal/middleware"
	"github.com/hoangson03112/VietXanh/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	store  *Store
	logger *zap.Logger
}

func NewHandler(store *Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("cart.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.handler")
	}
	return &Handler{store: store, logger: l}
}

func (h *Handler) sessionStore(c *gin.Context) *Store {
	return h.store.ForSession(c.GetString(middleware.CartSessionKey))
}

func (h *Handler) Detail(c *gin.Context) {
	store := h.sessionStore(c)

	items, err := store.Load(c.Request.Context())
	if err != nil {
		h.logger.Error("load cart failed", zap.String("key", store.Key()), zap.Error(err))
		e := carterrors.ErrStorageUnavailable
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, CartDetailResponse{Items: items, Total: Total(items)}, nil)
}

func (h *Handler) Count(c *gin.Context) {
	store := h.sessionStore(c)

	items, err := store.Load(c.Request.Context())
	if err != nil {
		e := carterrors.ErrStorageUnavailable
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	response.Success(c, http.StatusOK, CartCountResponse{Count: count}, nil)
}

func (h *Handler) AddItem(c *gin.Context) {
	productID := c.Param("productId")

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid cart item payload", err.Error())
		return
	}

	store := h.sessionStore(c)
	items, err := store.Add(c.Request.Context(), productID, Snapshot{
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
	}, req.Quantity)
	if err != nil {
		h.logger.Error("add item failed",
			zap.String("key", store.Key()),
			zap.String("product_id", productID),
			zap.Error(err),
		)
		e := carterrors.ErrStorageUnavailable
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, CartDetailResponse{Items: items, Total: Total(items)}, nil)
}

func (h *Handler) UpdateQty(c *gin.Context) {
	productID := c.Param("productId")

	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid quantity payload", err.Error())
		return
	}

	store := h.sessionStore(c)
	items, err := store.UpdateQuantity(c.Request.Context(), productID, req.Delta)
	if err != nil {
		h.logger.Error("update quantity failed",
			zap.String("key", store.Key()),
			zap.String("product_id", productID),
			zap.Error(err),
		)
		e := carterrors.ErrStorageUnavailable
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, CartDetailResponse{Items: items, Total: Total(items)}, nil)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	store := h.sessionStore(c)

	items, err := store.Remove(c.Request.Context(), c.Param("productId"))
	if err != nil {
		e := carterrors.ErrStorageUnavailable
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, CartDetailResponse{Items: items, Total: Total(items)}, nil)
}

func (h *Handler) Clear(c *gin.Context) {
	store := h.sessionStore(c)

	if err := store.Clear(c.Request.Context()); err != nil {
		e := carterrors.ErrStorageUnavailable
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, nil, nil)
}

// Events streams change notifications for this session's cart as SSE, so every
// open storefront view reloads when any of them writes.
func (h *Handler) Events(c *gin.Context) {
	store := h.sessionStore(c)

	notify := make(chan struct{}, 1)
	unsubscribe := store.Subscribe(func() {
		select {
		case notify <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-notify:
			c.SSEvent("cart", "changed")
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", "")
			return true
		}
	})
}
