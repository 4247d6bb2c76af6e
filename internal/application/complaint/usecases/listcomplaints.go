package usecases

import (
	"context"

	"complaintdesk/internal/application/complaint/dto"
	"complaintdesk/internal/domain/complaint"
	vo "complaintdesk/internal/domain/complaint/valueobjects"
	"complaintdesk/internal/shared/constants"
	"complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/logger"
)

type ListComplaintsQuery struct {
	View     View
	UserID   string
	Status   *string
	Priority *string
	Category *string
	Search   string
	SortBy   string
	Page     int
	PageSize int
}

type ListComplaintsResult struct {
	Complaints []dto.ComplaintListItemDTO
	TotalCount int64
	Page       int
	PageSize   int
}

type ListComplaintsUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewListComplaintsUseCase(
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

// Execute returns the non-archived complaints of a view, most recent first
// unless another order is requested. A zero PageSize returns every match.
func (uc *ListComplaintsUseCase) Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error) {
	uc.logger.Debugw("executing list complaints use case",
		"view", query.View,
		"user_id", query.UserID,
		"search", query.Search,
		"page", query.Page,
		"page_size", query.PageSize)

	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}
	if query.PageSize < 0 {
		query.PageSize = 0
	}
	if query.Page < 1 {
		query.Page = 1
	}

	filter, err := scope(complaint.Filter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, query.View, query.UserID)
	if err != nil {
		return nil, err
	}

	if query.SortBy != "" {
		order := complaint.SortOrder(query.SortBy)
		if !order.IsValid() {
			return nil, errors.NewValidationError("invalid sort order: " + query.SortBy)
		}
		filter.SortBy = order
	}

	if query.Status != nil {
		status, err := vo.NewStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status")
		}
		filter.Status = &status
	}

	if query.Priority != nil {
		priority, err := vo.NewPriority(*query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority")
		}
		filter.Priority = &priority
	}

	if query.Category != nil {
		category, err := vo.NewCategory(*query.Category)
		if err != nil {
			return nil, errors.NewValidationError("invalid category")
		}
		filter.Category = &category
	}

	items, total, err := uc.complaintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, errors.NewInternalError("failed to list complaints")
	}

	out := make([]dto.ComplaintListItemDTO, 0, len(items))
	for _, c := range items {
		out = append(out, dto.ToComplaintListItemDTO(c))
	}

	return &ListComplaintsResult{
		Complaints: out,
		TotalCount: total,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}
