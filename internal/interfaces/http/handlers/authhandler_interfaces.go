package handlers

import (
	"context"

	"complaintdesk/internal/application/user/dto"
	"complaintdesk/internal/application/user/usecases"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*dto.UserDTO, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context) error
}

type getCurrentUserUseCase interface {
	Execute(ctx context.Context) (*dto.UserDTO, error)
}

type listAgentsUseCase interface {
	Execute(ctx context.Context) ([]dto.UserDTO, error)
}
