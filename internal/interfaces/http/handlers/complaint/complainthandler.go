package complaint

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"complaintdesk/internal/application/complaint/usecases"
	"complaintdesk/internal/domain/user"
	"complaintdesk/internal/interfaces/http/handlers/common"
	"complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/logger"
	"complaintdesk/internal/shared/utils"
)

type ComplaintHandler struct {
	createComplaintUC  usecases.CreateComplaintExecutor
	updateStatusUC     usecases.UpdateStatusExecutor
	assignComplaintUC  usecases.AssignComplaintExecutor
	addCommentUC       usecases.AddCommentExecutor
	archiveComplaintUC usecases.ArchiveComplaintExecutor
	getComplaintUC     usecases.GetComplaintExecutor
	listComplaintsUC   usecases.ListComplaintsExecutor
	getStatsUC         usecases.GetComplaintStatsExecutor
	getAgentStatsUC    usecases.GetAgentStatsExecutor
	logger             logger.Interface
}

func NewComplaintHandler(
	createComplaintUC usecases.CreateComplaintExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	assignComplaintUC usecases.AssignComplaintExecutor,
	addCommentUC usecases.AddCommentExecutor,
	archiveComplaintUC usecases.ArchiveComplaintExecutor,
	getComplaintUC usecases.GetComplaintExecutor,
	listComplaintsUC usecases.ListComplaintsExecutor,
	getStatsUC usecases.GetComplaintStatsExecutor,
	getAgentStatsUC usecases.GetAgentStatsExecutor,
	logger logger.Interface,
) *ComplaintHandler {
	return &ComplaintHandler{
		createComplaintUC:  createComplaintUC,
		updateStatusUC:     updateStatusUC,
		assignComplaintUC:  assignComplaintUC,
		addCommentUC:       addCommentUC,
		archiveComplaintUC: archiveComplaintUC,
		getComplaintUC:     getComplaintUC,
		listComplaintsUC:   listComplaintsUC,
		getStatsUC:         getStatsUC,
		getAgentStatsUC:    getAgentStatsUC,
		logger:             logger,
	}
}

// CreateComplaint handles POST /complaints
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	actor, err := common.CurrentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create complaint", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createComplaintUC.Execute(c.Request.Context(), req.ToCommand(actor.ID, actor.Name))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint submitted successfully")
}

// GetComplaint handles GET /complaints/:id. The id segment may also be a
// complaint code.
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	key, err := complaintKey(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, _ := common.CurrentActor(c)
	result, err := h.getComplaintUC.Execute(c.Request.Context(), usecases.GetComplaintQuery{
		ComplaintKey: key,
		ViewerID:     actor.ID,
		ViewerRole:   actor.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListComplaints handles GET /complaints
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	h.list(c, usecases.ViewAll)
}

// ListMyComplaints handles GET /complaints/mine
func (h *ComplaintHandler) ListMyComplaints(c *gin.Context) {
	h.list(c, usecases.ViewCustomer)
}

// ListAssignedComplaints handles GET /complaints/assigned
func (h *ComplaintHandler) ListAssignedComplaints(c *gin.Context) {
	h.list(c, usecases.ViewAgent)
}

func (h *ComplaintHandler) list(c *gin.Context, view usecases.View) {
	actor, err := common.CurrentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req, err := parseListComplaintsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listComplaintsUC.Execute(c.Request.Context(), req.ToQuery(view, actor.ID, utils.ParsePagination(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Complaints, result.TotalCount, result.Page, result.PageSize)
}

// GetStats handles GET /complaints/stats. Counts cover the caller's own
// view: customers see their complaints, agents their assignments and
// managers everything.
func (h *ComplaintHandler) GetStats(c *gin.Context) {
	actor, err := common.CurrentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getStatsUC.Execute(c.Request.Context(), usecases.GetComplaintStatsQuery{
		View:   viewForRole(actor.Role),
		UserID: actor.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetAgentStats handles GET /complaints/agent-stats
func (h *ComplaintHandler) GetAgentStats(c *gin.Context) {
	result, err := h.getAgentStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus handles PATCH /complaints/:id/status
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	key, actor, ok := h.target(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		ComplaintKey: key,
		Status:       req.Status,
		ActorID:      actor.ID,
		ActorName:    actor.Name,
		Notes:        req.Notes,
		Resolution:   req.Resolution,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint status updated", result)
}

// AssignComplaint handles POST /complaints/:id/assign
func (h *ComplaintHandler) AssignComplaint(c *gin.Context) {
	key, actor, ok := h.target(c)
	if !ok {
		return
	}

	var req AssignComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.assignComplaintUC.Execute(c.Request.Context(), usecases.AssignComplaintCommand{
		ComplaintKey: key,
		AgentID:      req.AgentID,
		AgentName:    req.AgentName,
		ManagerID:    actor.ID,
		ManagerName:  actor.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint assigned", result)
}

// AddComment handles POST /complaints/:id/comments
func (h *ComplaintHandler) AddComment(c *gin.Context) {
	key, actor, ok := h.target(c)
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		ComplaintKey: key,
		AuthorID:     actor.ID,
		AuthorName:   actor.Name,
		Text:         req.Text,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added")
}

// ArchiveComplaint handles POST /complaints/:id/archive
func (h *ComplaintHandler) ArchiveComplaint(c *gin.Context) {
	key, actor, ok := h.target(c)
	if !ok {
		return
	}

	result, err := h.archiveComplaintUC.Execute(c.Request.Context(), usecases.ArchiveComplaintCommand{
		ComplaintKey: key,
		ActorID:      actor.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint archived", result)
}

// target resolves the path key and the acting user, writing the error
// response itself when either is missing.
func (h *ComplaintHandler) target(c *gin.Context) (string, common.Actor, bool) {
	key, err := complaintKey(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return "", common.Actor{}, false
	}
	actor, err := common.CurrentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return "", common.Actor{}, false
	}
	return key, actor, true
}

func complaintKey(c *gin.Context) (string, error) {
	key := strings.TrimSpace(c.Param("id"))
	if key == "" {
		return "", errors.NewValidationError("complaint id or code is required")
	}
	return key, nil
}

func viewForRole(role string) usecases.View {
	switch user.Role(role) {
	case user.RoleCustomer:
		return usecases.ViewCustomer
	case user.RoleAgent:
		return usecases.ViewAgent
	default:
		return usecases.ViewAll
	}
}
