package employee

import (
	"github.com/Marllon-hub/hospital-plataforma/internal/middleware"
	"github.com/Marllon-hub/hospital-plataforma/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "employee", "read"), h.GetAll)
		employees.GET("/options", middleware.RBACAuthorize(rbacService, "employee", "read"), h.GetOptions)
		employees.POST("", middleware.RBACAuthorize(rbacService, "employee", "create"), h.Create)
		employees.POST("/import", middleware.RBACAuthorize(rbacService, "employee", "import"), h.Import)
		employees.GET("/:id", middleware.RBACAuthorize(rbacService, "employee", "read"), h.GetByID)
		employees.PUT("/:id", middleware.RBACAuthorize(rbacService, "employee", "update"), h.Update)
		employees.DELETE("/:id", middleware.RBACAuthorize(rbacService, "employee", "delete"), h.Delete)
	}
}
