package usecases

import (
	"context"

	"complaintdesk/internal/application/complaint/dto"
	"complaintdesk/internal/domain/complaint"
	"complaintdesk/internal/domain/shared/events"
	"complaintdesk/internal/shared/biztime"
	"complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/logger"
)

type AssignComplaintCommand struct {
	ComplaintKey string
	AgentID      string
	AgentName    string
	ManagerID    string
	ManagerName  string
}

type AssignComplaintUseCase struct {
	complaintRepo complaint.Repository
	policy        complaint.TransitionPolicy
	publisher     events.Publisher
	logger        logger.Interface
}

func NewAssignComplaintUseCase(
	complaintRepo complaint.Repository,
	policy complaint.TransitionPolicy,
	publisher events.Publisher,
	logger logger.Interface,
) *AssignComplaintUseCase {
	return &AssignComplaintUseCase{
		complaintRepo: complaintRepo,
		policy:        policy,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *AssignComplaintUseCase) Execute(ctx context.Context, cmd AssignComplaintCommand) (*dto.ComplaintDTO, error) {
	uc.logger.Infow("executing assign complaint use case",
		"complaint", cmd.ComplaintKey,
		"agent_id", cmd.AgentID,
		"manager_id", cmd.ManagerID)

	agent, err := complaint.NewActor(cmd.AgentID, cmd.AgentName)
	if err != nil {
		return nil, errors.NewValidationError("agent ID is required")
	}
	manager, err := complaint.NewActor(cmd.ManagerID, cmd.ManagerName)
	if err != nil {
		return nil, errors.NewValidationError("manager ID is required")
	}

	var previousAgent string
	updated, err := uc.complaintRepo.Mutate(ctx, cmd.ComplaintKey, func(current *complaint.Complaint) (*complaint.Complaint, error) {
		previousAgent = current.AssignedTo()
		return current.AssignTo(uc.policy, agent, manager, biztime.NowUTC())
	})
	if err != nil {
		uc.logger.Warnw("failed to assign complaint", "complaint", cmd.ComplaintKey, "error", err)
		return nil, toAppError(err, "assign complaint")
	}

	if previousAgent != "" && previousAgent != agent.ID {
		uc.logger.Infow("complaint reassigned", "code", updated.Code(), "previous_agent_id", previousAgent)
	}

	publish(uc.publisher, uc.logger, complaint.NewAssignedEvent(updated, manager.ID))

	uc.logger.Infow("complaint assigned successfully", "code", updated.Code(), "agent_id", agent.ID)

	return dto.ToComplaintDTO(updated), nil
}
