package routes

import (
	"github.com/gin-gonic/gin"

	"complaintdesk/internal/domain/permission"
	complainthandlers "complaintdesk/internal/interfaces/http/handlers/complaint"
	"complaintdesk/internal/interfaces/http/middleware"
)

type ComplaintRouteConfig struct {
	ComplaintHandler     *complainthandlers.ComplaintHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupComplaintRoutes(engine *gin.Engine, config *ComplaintRouteConfig) {
	gate := func(action permission.Action) gin.HandlerFunc {
		return config.PermissionMiddleware.RequirePermission(permission.ResourceComplaint, action)
	}

	complaints := engine.Group("/complaints")
	complaints.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		complaints.POST("",
			gate(permission.ActionCreate),
			config.ComplaintHandler.CreateComplaint)
		complaints.GET("",
			gate(permission.ActionReadAll),
			config.ComplaintHandler.ListComplaints)

		// Named views and aggregates (must come BEFORE /:id)
		complaints.GET("/mine",
			gate(permission.ActionReadOwn),
			config.ComplaintHandler.ListMyComplaints)
		complaints.GET("/assigned",
			gate(permission.ActionReadAssigned),
			config.ComplaintHandler.ListAssignedComplaints)
		complaints.GET("/stats",
			config.ComplaintHandler.GetStats)
		complaints.GET("/agent-stats",
			config.PermissionMiddleware.RequirePermission(permission.ResourceStats, permission.ActionRead),
			config.ComplaintHandler.GetAgentStats)

		// Actions on a single complaint; :id accepts the id or the code
		complaints.PATCH("/:id/status",
			gate(permission.ActionUpdateStatus),
			config.ComplaintHandler.UpdateStatus)
		complaints.POST("/:id/assign",
			gate(permission.ActionAssign),
			config.ComplaintHandler.AssignComplaint)
		complaints.POST("/:id/comments",
			gate(permission.ActionComment),
			config.ComplaintHandler.AddComment)
		complaints.POST("/:id/archive",
			gate(permission.ActionArchive),
			config.ComplaintHandler.ArchiveComplaint)

		complaints.GET("/:id",
			config.ComplaintHandler.GetComplaint)
	}
}
