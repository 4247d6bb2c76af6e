package usecases

import (
	"context"

	"complaintdesk/internal/application/user/dto"
	"complaintdesk/internal/domain/user"
	apperrors "complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/logger"
)

type ListAgentsUseCase struct {
	directory user.Directory
	logger    logger.Interface
}

func NewListAgentsUseCase(directory user.Directory, logger logger.Interface) *ListAgentsUseCase {
	return &ListAgentsUseCase{
		directory: directory,
		logger:    logger,
	}
}

// Execute lists every agent in directory order.
func (uc *ListAgentsUseCase) Execute(ctx context.Context) ([]dto.UserDTO, error) {
	agents, err := uc.directory.ListByRole(ctx, user.RoleAgent)
	if err != nil {
		uc.logger.Errorw("failed to list agents", "error", err)
		return nil, apperrors.NewInternalError("failed to list agents")
	}
	return dto.ToUserDTOs(agents), nil
}
