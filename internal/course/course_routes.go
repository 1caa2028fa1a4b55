package course

import (
	"github.com/Marllon-hub/hospital-plataforma/internal/middleware"
	"github.com/Marllon-hub/hospital-plataforma/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	// Public: certificate codes are printed on paper, anyone may verify.
	r.GET("/certificates/validate/:code", h.ValidateCertificate)

	courses := r.Group("/courses")
	courses.Use(middleware.AuthMiddleware())
	{
		courses.GET("", middleware.RBACAuthorize(rbacService, "course", "read"), h.GetAll)
		courses.POST("", middleware.RBACAuthorize(rbacService, "course", "create"), h.Create)
		courses.GET("/:id", middleware.RBACAuthorize(rbacService, "course", "read"), h.GetByID)
		courses.PUT("/:id", middleware.RBACAuthorize(rbacService, "course", "create"), h.Update)
		courses.DELETE("/:id", middleware.RBACAuthorize(rbacService, "course", "delete"), h.Delete)
		courses.POST("/:id/complete", middleware.RBACAuthorize(rbacService, "course", "complete"), h.Complete)
		courses.GET("/:id/completions", middleware.RBACAuthorize(rbacService, "certificate", "read"), h.CourseCompletions)
	}

	certificates := r.Group("/certificates")
	certificates.Use(middleware.AuthMiddleware())
	{
		certificates.GET("/mine", middleware.RBACAuthorize(rbacService, "certificate", "read_own"), h.MyCompletions)
	}
}
