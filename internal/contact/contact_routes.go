package contact

import (
	"github.com/hoangson03112/VietXanh/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	contacts := rg.Group("/contact")
	{
		contacts.POST("", h.Submit)
		contacts.POST("/checkout", middleware.CartSession(), h.Checkout)
	}

	admin := rg.Group("/contact", middleware.AuthMiddleware(), middleware.RoleMiddleware("ADMIN"))
	{
		admin.GET("", h.List)
		admin.GET("/:contactId", h.Detail)
		admin.PUT("/:contactId/status", h.UpdateStatus)
	}
}
