package usecases

import (
	"context"

	"complaintdesk/internal/application/complaint/dto"
	"complaintdesk/internal/domain/complaint"
	"complaintdesk/internal/domain/shared/events"
	"complaintdesk/internal/shared/biztime"
	"complaintdesk/internal/shared/logger"
)

type ArchiveComplaintCommand struct {
	ComplaintKey string
	ActorID      string
}

type ArchiveComplaintUseCase struct {
	complaintRepo complaint.Repository
	publisher     events.Publisher
	logger        logger.Interface
}

func NewArchiveComplaintUseCase(
	complaintRepo complaint.Repository,
	publisher events.Publisher,
	logger logger.Interface,
) *ArchiveComplaintUseCase {
	return &ArchiveComplaintUseCase{
		complaintRepo: complaintRepo,
		publisher:     publisher,
		logger:        logger,
	}
}

// Execute archives the complaint. Archiving an archived complaint succeeds and
// publishes nothing.
func (uc *ArchiveComplaintUseCase) Execute(ctx context.Context, cmd ArchiveComplaintCommand) (*dto.ComplaintDTO, error) {
	uc.logger.Infow("executing archive complaint use case", "complaint", cmd.ComplaintKey, "actor_id", cmd.ActorID)

	wasArchived := false
	updated, err := uc.complaintRepo.Mutate(ctx, cmd.ComplaintKey, func(current *complaint.Complaint) (*complaint.Complaint, error) {
		wasArchived = current.IsArchived()
		return current.Archive(biztime.NowUTC()), nil
	})
	if err != nil {
		uc.logger.Warnw("failed to archive complaint", "complaint", cmd.ComplaintKey, "error", err)
		return nil, toAppError(err, "archive complaint")
	}

	if !wasArchived {
		publish(uc.publisher, uc.logger, complaint.NewArchivedEvent(updated, updated.UpdatedAt()))
	}

	uc.logger.Infow("complaint archived", "code", updated.Code(), "already_archived", wasArchived)

	return dto.ToComplaintDTO(updated), nil
}
