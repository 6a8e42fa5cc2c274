package blog

import (
	"github.com/hoangson03112/VietXanh/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	blogs := rg.Group("/blogs")
	{
		blogs.GET("", h.List)
		blogs.GET("/featured", h.Featured)
		blogs.GET("/:blogId", h.Detail)
	}

	admin := rg.Group("/blogs", middleware.AuthMiddleware(), middleware.RoleMiddleware("ADMIN"))
	{
		admin.GET("/admin/all", h.AdminList)
		admin.POST("", h.Create)
		admin.PUT("/:blogId", h.Update)
		admin.PUT("/:blogId/toggle-status", h.ToggleActive)
		admin.DELETE("/:blogId", h.Delete)
	}
}
