package materialrequest

import (
	"github.com/Marllon-hub/hospital-plataforma/internal/middleware"
	"github.com/Marllon-hub/hospital-plataforma/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	requests := r.Group("/material-requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("", middleware.RBACAuthorize(rbacService, "material_request", "create"), h.Create)
		requests.GET("", middleware.RBACAuthorize(rbacService, "material_request", "read"), h.GetAll)
		requests.GET("/mine", middleware.RBACAuthorize(rbacService, "material_request", "read_own"), h.GetMine)
		requests.PUT("/:id/decision", middleware.RBACAuthorize(rbacService, "material_request", "decide"), h.Decide)
		requests.DELETE("/:id", middleware.RBACAuthorize(rbacService, "material_request", "delete"), h.Delete)
	}
}
