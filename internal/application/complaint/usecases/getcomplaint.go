package usecases

import (
	"context"

	"complaintdesk/internal/application/complaint/dto"
	"complaintdesk/internal/domain/complaint"
	vo "complaintdesk/internal/domain/complaint/valueobjects"
	"complaintdesk/internal/domain/permission"
	"complaintdesk/internal/shared/logger"
	"complaintdesk/internal/shared/services/markdown"
)

type GetComplaintQuery struct {
	ComplaintKey string
	ViewerID     string
	ViewerRole   string
}

type GetComplaintUseCase struct {
	complaintRepo complaint.Repository
	enforcer      permission.Enforcer
	renderer      markdown.Renderer
	logger        logger.Interface
}

func NewGetComplaintUseCase(
	complaintRepo complaint.Repository,
	enforcer permission.Enforcer,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaintRepo: complaintRepo,
		enforcer:      enforcer,
		renderer:      renderer,
		logger:        logger,
	}
}

// Execute looks the complaint up by id or code. Archived complaints are still
// returned.
func (uc *GetComplaintUseCase) Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDetailDTO, error) {
	uc.logger.Debugw("executing get complaint use case", "complaint", query.ComplaintKey, "viewer_id", query.ViewerID)

	c, err := uc.complaintRepo.GetByIDOrCode(ctx, query.ComplaintKey)
	if err != nil {
		return nil, toAppError(err, "load complaint")
	}

	base := dto.ToComplaintDTO(c)
	detail := &dto.ComplaintDetailDTO{
		ComplaintDTO:    *base,
		DescriptionHTML: uc.render(c.Code(), c.Description()),
		ResolutionHTML:  uc.render(c.Code(), c.Resolution()),
		StatusTone:      c.Status().Tone(),
		PriorityTone:    c.Priority().Tone(),
		Capabilities:    uc.capabilities(c, query),
	}
	for i := range detail.Comments {
		detail.Comments[i].TextHTML = uc.render(c.Code(), detail.Comments[i].Text)
	}

	return detail, nil
}

func (uc *GetComplaintUseCase) capabilities(c *complaint.Complaint, query GetComplaintQuery) dto.CapabilitiesDTO {
	if query.ViewerID == "" || uc.enforcer == nil {
		return dto.CapabilitiesDTO{}
	}

	allowed := func(action permission.Action) bool {
		return permission.Allowed(uc.enforcer, query.ViewerRole, permission.ResourceComplaint, action)
	}

	return dto.CapabilitiesDTO{
		CanUpdateStatus: allowed(permission.ActionUpdateStatus),
		CanAssign:       allowed(permission.ActionAssign) && c.Status() == vo.StatusSubmitted,
		CanComment:      allowed(permission.ActionComment),
		CanArchive:      allowed(permission.ActionArchive),
	}
}

func (uc *GetComplaintUseCase) render(code, text string) string {
	if uc.renderer == nil || text == "" {
		return ""
	}
	html, err := uc.renderer.Render(text)
	if err != nil {
		uc.logger.Warnw("failed to render markdown", "code", code, "error", err)
		return ""
	}
	return html
}
