package usecases

import (
	"context"

	"complaintdesk/internal/application/complaint/dto"
	"complaintdesk/internal/domain/complaint"
	"complaintdesk/internal/domain/user"
	"complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/logger"
)

type GetAgentStatsUseCase struct {
	complaintRepo complaint.Repository
	directory     user.Directory
	logger        logger.Interface
}

func NewGetAgentStatsUseCase(
	complaintRepo complaint.Repository,
	directory user.Directory,
	logger logger.Interface,
) *GetAgentStatsUseCase {
	return &GetAgentStatsUseCase{
		complaintRepo: complaintRepo,
		directory:     directory,
		logger:        logger,
	}
}

// Execute reports the workload of every agent in the directory, in directory
// order. Agents with nothing assigned are included with zero counts.
func (uc *GetAgentStatsUseCase) Execute(ctx context.Context) ([]dto.AgentWorkloadDTO, error) {
	agents, err := uc.directory.ListByRole(ctx, user.RoleAgent)
	if err != nil {
		uc.logger.Errorw("failed to list agents", "error", err)
		return nil, errors.NewInternalError("failed to list agents")
	}

	actors := make([]complaint.Actor, 0, len(agents))
	for _, a := range agents {
		actors = append(actors, complaint.Actor{ID: a.ID(), Name: a.Name()})
	}

	items, _, err := uc.complaintRepo.List(ctx, complaint.Filter{})
	if err != nil {
		uc.logger.Errorw("failed to load complaints for agent stats", "error", err)
		return nil, errors.NewInternalError("failed to compute agent stats")
	}

	return dto.ToAgentWorkloadDTOs(complaint.ComputeWorkload(actors, items)), nil
}
