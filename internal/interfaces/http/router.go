package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaintdesk/internal/interfaces/http/middleware"
	"complaintdesk/internal/interfaces/http/routes"
	"complaintdesk/internal/shared/id"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	ids := c.infra.ids

	c.engine.Use(middleware.RequestID(func() string { return ids.New(id.PrefixRequest) }))
	c.engine.Use(middleware.Logger(c.log.Named("http")))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:          c.hdlrs.authHandler,
		AgentHandler:         c.hdlrs.agentHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupComplaintRoutes(c.engine, &routes.ComplaintRouteConfig{
		ComplaintHandler:     c.hdlrs.complaintHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}
