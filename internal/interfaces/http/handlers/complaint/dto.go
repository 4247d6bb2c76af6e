package complaint

import (
	"github.com/gin-gonic/gin"

	"complaintdesk/internal/application/complaint/usecases"
	"complaintdesk/internal/shared/utils"
)

type CreateComplaintRequest struct {
	PolicyNumber string `json:"policy_number" binding:"max=64"`
	Category     string `json:"category" binding:"required,complaint_category"`
	Priority     string `json:"priority" binding:"required,complaint_priority"`
	Subject      string `json:"subject" binding:"required,max=200"`
	Description  string `json:"description" binding:"required,max=10000"`
}

func (r *CreateComplaintRequest) ToCommand(customerID, customerName string) usecases.CreateComplaintCommand {
	return usecases.CreateComplaintCommand{
		CustomerID:   customerID,
		CustomerName: customerName,
		PolicyNumber: r.PolicyNumber,
		Category:     r.Category,
		Priority:     r.Priority,
		Subject:      r.Subject,
		Description:  r.Description,
	}
}

type UpdateStatusRequest struct {
	Status     string `json:"status" binding:"required,complaint_status"`
	Notes      string `json:"notes" binding:"max=2000"`
	Resolution string `json:"resolution" binding:"max=10000"`
}

type AssignComplaintRequest struct {
	AgentID   string `json:"agent_id" binding:"required"`
	AgentName string `json:"agent_name" binding:"required,max=200"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required,max=10000"`
}

// ListComplaintsRequest carries the search, filter and sort query parameters.
// Paging is read separately.
type ListComplaintsRequest struct {
	Search   string `form:"search" binding:"max=200"`
	Status   string `form:"status" binding:"complaint_status"`
	Priority string `form:"priority" binding:"complaint_priority"`
	Category string `form:"category" binding:"complaint_category"`
	Sort     string `form:"sort" binding:"sort_order"`
}

func (r *ListComplaintsRequest) ToQuery(view usecases.View, userID string, p utils.Pagination) usecases.ListComplaintsQuery {
	return usecases.ListComplaintsQuery{
		View:     view,
		UserID:   userID,
		Status:   optional(r.Status),
		Priority: optional(r.Priority),
		Category: optional(r.Category),
		Search:   r.Search,
		SortBy:   r.Sort,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}

func parseListComplaintsRequest(c *gin.Context) (*ListComplaintsRequest, error) {
	var req ListComplaintsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return nil, utils.BindingError(err)
	}
	return &req, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
