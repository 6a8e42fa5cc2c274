package product

import (
	"github.com/hoangson03112/VietXanh/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/featured", h.Featured)
		products.GET("/:productId", h.Detail)
	}

	admin := rg.Group("/products", middleware.AuthMiddleware(), middleware.RoleMiddleware("ADMIN"))
	{
		admin.GET("/admin/all", h.AdminList)
		admin.POST("", h.Create)
		admin.PUT("/:productId", h.Update)
		admin.PUT("/:productId/toggle-status", h.ToggleActive)
		admin.PUT("/:productId/toggle-featured", h.ToggleFeatured)
		admin.DELETE("/:productId", h.Delete)
	}
}
