package http

import (
	"complaintdesk/internal/infrastructure/repository"
)

// repositories holds the in-memory state owners of the desk.
type repositories struct {
	complaintRepo *repository.ComplaintRepository
	userRepo      *repository.UserRepository
}

func newRepositories() *repositories {
	return &repositories{
		complaintRepo: repository.NewComplaintRepository(),
		userRepo:      repository.NewUserRepository(),
	}
}
