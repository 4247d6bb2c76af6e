package http

import (
	complaintUsecases "complaintdesk/internal/application/complaint/usecases"
	userUsecases "complaintdesk/internal/application/user/usecases"
)

type allUseCases struct {
	// Complaints
	createComplaint  *complaintUsecases.CreateComplaintUseCase
	updateStatus     *complaintUsecases.UpdateStatusUseCase
	assignComplaint  *complaintUsecases.AssignComplaintUseCase
	addComment       *complaintUsecases.AddCommentUseCase
	archiveComplaint *complaintUsecases.ArchiveComplaintUseCase
	getComplaint     *complaintUsecases.GetComplaintUseCase
	listComplaints   *complaintUsecases.ListComplaintsUseCase
	getStats         *complaintUsecases.GetComplaintStatsUseCase
	getAgentStats    *complaintUsecases.GetAgentStatsUseCase

	// Users and session
	login          *userUsecases.LoginUseCase
	register       *userUsecases.RegisterUseCase
	logout         *userUsecases.LogoutUseCase
	getCurrentUser *userUsecases.GetCurrentUserUseCase
	listAgents     *userUsecases.ListAgentsUseCase
}

// ============================================================
// Section 3: Use cases
// ============================================================

func (c *Container) initUseCases() {
	log := c.log
	complaints := c.repos.complaintRepo
	users := c.repos.userRepo
	infra := c.infra

	c.ucs = &allUseCases{
		createComplaint:  complaintUsecases.NewCreateComplaintUseCase(complaints, infra.codes, infra.ids, c.dispatcher, log),
		updateStatus:     complaintUsecases.NewUpdateStatusUseCase(complaints, c.policy, c.dispatcher, log),
		assignComplaint:  complaintUsecases.NewAssignComplaintUseCase(complaints, c.policy, c.dispatcher, log),
		addComment:       complaintUsecases.NewAddCommentUseCase(complaints, infra.ids, c.dispatcher, log),
		archiveComplaint: complaintUsecases.NewArchiveComplaintUseCase(complaints, c.dispatcher, log),
		getComplaint:     complaintUsecases.NewGetComplaintUseCase(complaints, infra.enforcer, infra.renderer, log),
		listComplaints:   complaintUsecases.NewListComplaintsUseCase(complaints, log),
		getStats:         complaintUsecases.NewGetComplaintStatsUseCase(complaints, log),
		getAgentStats:    complaintUsecases.NewGetAgentStatsUseCase(complaints, users, log),

		login:          userUsecases.NewLoginUseCase(users, c.sessions, infra.hasher, c.authMode, log),
		register:       userUsecases.NewRegisterUseCase(users, c.sessions, infra.hasher, infra.ids, c.authMode, log),
		logout:         userUsecases.NewLogoutUseCase(c.sessions, log),
		getCurrentUser: userUsecases.NewGetCurrentUserUseCase(c.sessions, infra.enforcer, log),
		listAgents:     userUsecases.NewListAgentsUseCase(users, log),
	}
}
