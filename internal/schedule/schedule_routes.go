package schedule

import (
	"github.com/Marllon-hub/hospital-plataforma/internal/middleware"
	"github.com/Marllon-hub/hospital-plataforma/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	schedules := r.Group("/schedules")
	schedules.Use(middleware.AuthMiddleware())
	{
		schedules.GET("", middleware.RBACAuthorize(rbacService, "schedule", "read"), h.GetAll)
		schedules.POST("/generate", middleware.RBACAuthorize(rbacService, "schedule", "generate"), h.Generate)
		schedules.GET("/:id", middleware.RBACAuthorize(rbacService, "schedule", "read"), h.GetGrid)
		schedules.GET("/:id/me", middleware.RBACAuthorize(rbacService, "schedule", "read_own"), h.GetMine)
		schedules.PUT("/:id/days", middleware.RBACAuthorize(rbacService, "schedule", "override"), h.SetDay)
		schedules.GET("/:id/export", middleware.RBACAuthorize(rbacService, "schedule", "export"), h.Export)
		schedules.DELETE("/:id", middleware.RBACAuthorize(rbacService, "schedule", "delete"), h.Delete)
	}
}
