package usecases

import (
	"context"

	"complaintdesk/internal/application/complaint/dto"
)

type CreateComplaintExecutor interface {
	Execute(ctx context.Context, cmd CreateComplaintCommand) (*dto.ComplaintDTO, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.ComplaintDTO, error)
}

type AssignComplaintExecutor interface {
	Execute(ctx context.Context, cmd AssignComplaintCommand) (*dto.ComplaintDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.ComplaintDTO, error)
}

type ArchiveComplaintExecutor interface {
	Execute(ctx context.Context, cmd ArchiveComplaintCommand) (*dto.ComplaintDTO, error)
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDetailDTO, error)
}

type ListComplaintsExecutor interface {
	Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error)
}

type GetComplaintStatsExecutor interface {
	Execute(ctx context.Context, query GetComplaintStatsQuery) (*dto.StatsDTO, error)
}

type GetAgentStatsExecutor interface {
	Execute(ctx context.Context) ([]dto.AgentWorkloadDTO, error)
}
