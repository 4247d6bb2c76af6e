package http

import (
	"complaintdesk/internal/interfaces/http/handlers"
	complainthandlers "complaintdesk/internal/interfaces/http/handlers/complaint"
	"complaintdesk/internal/interfaces/http/middleware"
)

type allHandlers struct {
	authHandler      *handlers.AuthHandler
	agentHandler     *handlers.AgentHandler
	complaintHandler *complainthandlers.ComplaintHandler
}

func (c *Container) initHandlers() {
	log := c.log
	ucs := c.ucs

	c.authMiddleware = middleware.NewAuthMiddleware(c.sessions)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.infra.enforcer, log)

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(
			ucs.login,
			ucs.register,
			ucs.logout,
			ucs.getCurrentUser,
			log,
		),
		agentHandler: handlers.NewAgentHandler(ucs.listAgents, log),
		complaintHandler: complainthandlers.NewComplaintHandler(
			ucs.createComplaint,
			ucs.updateStatus,
			ucs.assignComplaint,
			ucs.addComment,
			ucs.archiveComplaint,
			ucs.getComplaint,
			ucs.listComplaints,
			ucs.getStats,
			ucs.getAgentStats,
			log,
		),
	}
}
