package routes

import (
	"github.com/gin-gonic/gin"

	"complaintdesk/internal/domain/permission"
	"complaintdesk/internal/interfaces/http/handlers"
	"complaintdesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler          *handlers.AuthHandler
	AgentHandler         *handlers.AgentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/logout", config.AuthHandler.Logout)
		auth.GET("/me", config.AuthMiddleware.RequireAuth(), config.AuthHandler.GetCurrentUser)
	}

	engine.GET("/agents",
		config.AuthMiddleware.RequireAuth(),
		config.PermissionMiddleware.RequirePermission(permission.ResourceAgent, permission.ActionRead),
		config.AgentHandler.ListAgents)
}
