package usecases

import (
	"context"

	"complaintdesk/internal/application/complaint/dto"
	"complaintdesk/internal/domain/complaint"
	vo "complaintdesk/internal/domain/complaint/valueobjects"
	"complaintdesk/internal/domain/shared/events"
	"complaintdesk/internal/shared/biztime"
	"complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/logger"
)

type UpdateStatusCommand struct {
	ComplaintKey string
	Status       string
	ActorID      string
	ActorName    string
	Notes        string
	Resolution   string
}

type UpdateStatusUseCase struct {
	complaintRepo complaint.Repository
	policy        complaint.TransitionPolicy
	publisher     events.Publisher
	logger        logger.Interface
}

func NewUpdateStatusUseCase(
	complaintRepo complaint.Repository,
	policy complaint.TransitionPolicy,
	publisher events.Publisher,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		complaintRepo: complaintRepo,
		policy:        policy,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.ComplaintDTO, error) {
	uc.logger.Infow("executing update status use case",
		"complaint", cmd.ComplaintKey,
		"status", cmd.Status,
		"actor_id", cmd.ActorID,
		"policy", uc.policy.Name())

	next, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	actor, err := complaint.NewActor(cmd.ActorID, cmd.ActorName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var previous vo.Status
	updated, err := uc.complaintRepo.Mutate(ctx, cmd.ComplaintKey, func(current *complaint.Complaint) (*complaint.Complaint, error) {
		previous = current.Status()
		return current.ChangeStatus(uc.policy, next, actor, cmd.Notes, cmd.Resolution, biztime.NowUTC())
	})
	if err != nil {
		uc.logger.Warnw("failed to update complaint status", "complaint", cmd.ComplaintKey, "error", err)
		return nil, toAppError(err, "update complaint status")
	}

	publish(uc.publisher, uc.logger, complaint.NewStatusChangedEvent(updated, previous.String(), actor.ID))

	uc.logger.Infow("complaint status updated",
		"code", updated.Code(),
		"from", previous,
		"to", updated.Status())

	return dto.ToComplaintDTO(updated), nil
}
