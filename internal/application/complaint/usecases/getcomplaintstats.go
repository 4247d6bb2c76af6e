package usecases

import (
	"context"

	"complaintdesk/internal/application/complaint/dto"
	"complaintdesk/internal/domain/complaint"
	"complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/logger"
)

type GetComplaintStatsQuery struct {
	View   View
	UserID string
}

type GetComplaintStatsUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewGetComplaintStatsUseCase(
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *GetComplaintStatsUseCase {
	return &GetComplaintStatsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

// Execute counts non-archived complaints in the view by status.
func (uc *GetComplaintStatsUseCase) Execute(ctx context.Context, query GetComplaintStatsQuery) (*dto.StatsDTO, error) {
	filter, err := scope(complaint.Filter{}, query.View, query.UserID)
	if err != nil {
		return nil, err
	}

	items, _, err := uc.complaintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to load complaints for stats", "error", err)
		return nil, errors.NewInternalError("failed to compute complaint stats")
	}

	stats := dto.ToStatsDTO(complaint.ComputeStats(items))
	return &stats, nil
}
