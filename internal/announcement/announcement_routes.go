package announcement

import (
	"github.com/Marllon-hub/hospital-plataforma/internal/middleware"
	"github.com/Marllon-hub/hospital-plataforma/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	announcements := r.Group("/announcements")
	announcements.Use(middleware.AuthMiddleware())
	{
		announcements.GET("", middleware.RBACAuthorize(rbacService, "announcement", "read"), h.GetAll)
		announcements.GET("/:id", middleware.RBACAuthorize(rbacService, "announcement", "read"), h.GetByID)
		announcements.POST("", middleware.RBACAuthorize(rbacService, "announcement", "create"), h.Create)
		announcements.DELETE("/:id", middleware.RBACAuthorize(rbacService, "announcement", "delete"), h.Delete)
	}
}
