package auth

import (
	"github.com/Marllon-hub/hospital-plataforma/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.5, 5), h.Login)
		auth.POST("/refresh", h.RefreshToken)
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), h.Me)
		auth.POST("/change-password", middleware.AuthMiddleware(), middleware.RateLimitByUser(1, 3), h.ChangePassword)
		auth.POST("/logout", h.Logout)
	}
}
