package message

import (
	"github.com/Marllon-hub/hospital-plataforma/internal/middleware"
	"github.com/Marllon-hub/hospital-plataforma/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	messages := r.Group("/messages")
	messages.Use(middleware.AuthMiddleware())
	messages.Use(middleware.RBACAuthorize(rbacService, "message", "use"))
	{
		messages.POST("", h.Send)
		messages.GET("/conversations", h.GetConversations)
		messages.GET("/contacts", h.GetContacts)
		messages.GET("/with/:peerId", h.GetConversation)
	}
}
