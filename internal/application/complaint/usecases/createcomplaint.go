package usecases

import (
	"context"

	"complaintdesk/internal/application/complaint/dto"
	"complaintdesk/internal/domain/complaint"
	vo "complaintdesk/internal/domain/complaint/valueobjects"
	"complaintdesk/internal/domain/shared/events"
	"complaintdesk/internal/shared/biztime"
	"complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/id"
	"complaintdesk/internal/shared/logger"
)

type CreateComplaintCommand struct {
	CustomerID   string
	CustomerName string
	PolicyNumber string
	Category     string
	Priority     string
	Subject      string
	Description  string
}

type CreateComplaintUseCase struct {
	complaintRepo complaint.Repository
	codes         complaint.CodeGenerator
	ids           id.Generator
	publisher     events.Publisher
	logger        logger.Interface
}

func NewCreateComplaintUseCase(
	complaintRepo complaint.Repository,
	codes complaint.CodeGenerator,
	ids id.Generator,
	publisher events.Publisher,
	logger logger.Interface,
) *CreateComplaintUseCase {
	return &CreateComplaintUseCase{
		complaintRepo: complaintRepo,
		codes:         codes,
		ids:           ids,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *CreateComplaintUseCase) Execute(ctx context.Context, cmd CreateComplaintCommand) (*dto.ComplaintDTO, error) {
	uc.logger.Infow("executing create complaint use case", "customer_id", cmd.CustomerID, "category", cmd.Category)

	if cmd.CustomerID == "" {
		return nil, errors.NewValidationError("customer ID is required")
	}
	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	now := biztime.NowUTC()
	code, err := uc.codes.Generate(ctx, now)
	if err != nil {
		uc.logger.Errorw("failed to generate complaint code", "error", err)
		return nil, errors.NewInternalError("failed to generate complaint code")
	}

	c, err := complaint.NewComplaint(
		uc.ids.New(id.PrefixComplaint),
		code,
		complaint.Actor{ID: cmd.CustomerID, Name: cmd.CustomerName},
		cmd.PolicyNumber,
		category,
		priority,
		cmd.Subject,
		cmd.Description,
		now,
	)
	if err != nil {
		uc.logger.Errorw("failed to create complaint entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.complaintRepo.Insert(ctx, c); err != nil {
		uc.logger.Errorw("failed to save complaint", "error", err, "code", code)
		return nil, toAppError(err, "save complaint")
	}

	publish(uc.publisher, uc.logger, complaint.NewSubmittedEvent(c))

	uc.logger.Infow("complaint created successfully", "complaint_id", c.ID(), "code", c.Code())

	return dto.ToComplaintDTO(c), nil
}
