package usecases

import (
	"context"

	"complaintdesk/internal/application/complaint/dto"
	"complaintdesk/internal/domain/complaint"
	"complaintdesk/internal/domain/shared/events"
	"complaintdesk/internal/shared/biztime"
	"complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/id"
	"complaintdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	ComplaintKey string
	AuthorID     string
	AuthorName   string
	Text         string
}

type AddCommentUseCase struct {
	complaintRepo complaint.Repository
	ids           id.Generator
	publisher     events.Publisher
	logger        logger.Interface
}

func NewAddCommentUseCase(
	complaintRepo complaint.Repository,
	ids id.Generator,
	publisher events.Publisher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		complaintRepo: complaintRepo,
		ids:           ids,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.ComplaintDTO, error) {
	uc.logger.Infow("executing add comment use case", "complaint", cmd.ComplaintKey, "author_id", cmd.AuthorID)

	author, err := complaint.NewActor(cmd.AuthorID, cmd.AuthorName)
	if err != nil {
		return nil, errors.NewValidationError("author ID is required")
	}

	var added complaint.Comment
	updated, err := uc.complaintRepo.Mutate(ctx, cmd.ComplaintKey, func(current *complaint.Complaint) (*complaint.Complaint, error) {
		now := biztime.NowUTC()
		cm, err := complaint.NewComment(uc.ids.New(id.PrefixComment), author, cmd.Text, now)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		added = cm
		return current.AddComment(cm, now)
	})
	if err != nil {
		uc.logger.Warnw("failed to add comment", "complaint", cmd.ComplaintKey, "error", err)
		return nil, toAppError(err, "add comment")
	}

	publish(uc.publisher, uc.logger, complaint.NewCommentAddedEvent(updated, added))

	uc.logger.Infow("comment added successfully", "code", updated.Code(), "comment_id", added.ID())

	return dto.ToComplaintDTO(updated), nil
}
