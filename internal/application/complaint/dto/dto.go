package dto

import (
	"time"

	"complaintdesk/internal/domain/complaint"
)

type HistoryEntryDTO struct {
	Status        string    `json:"status"`
	ChangedBy     string    `json:"changed_by"`
	ChangedByName string    `json:"changed_by_name"`
	ChangedAt     time.Time `json:"changed_at"`
	Notes         string    `json:"notes,omitempty"`
}

type CommentDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	TextHTML  string    `json:"text_html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ComplaintDTO struct {
	ID             string            `json:"id"`
	Code           string            `json:"code"`
	CustomerID     string            `json:"customer_id"`
	CustomerName   string            `json:"customer_name"`
	PolicyNumber   string            `json:"policy_number"`
	Category       string            `json:"category"`
	Priority       string            `json:"priority"`
	Status         string            `json:"status"`
	Subject        string            `json:"subject"`
	Description    string            `json:"description"`
	Resolution     string            `json:"resolution,omitempty"`
	AssignedTo     string            `json:"assigned_to,omitempty"`
	AssignedToName string            `json:"assigned_to_name,omitempty"`
	StatusHistory  []HistoryEntryDTO `json:"status_history"`
	Comments       []CommentDTO      `json:"comments"`
	IsArchived     bool              `json:"is_archived"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CapabilitiesDTO tells a client which actions to offer. The flags are
// advisory.
type CapabilitiesDTO struct {
	CanUpdateStatus bool `json:"can_update_status"`
	CanAssign       bool `json:"can_assign"`
	CanComment      bool `json:"can_comment"`
	CanArchive      bool `json:"can_archive"`
}

type ComplaintDetailDTO struct {
	ComplaintDTO
	DescriptionHTML string          `json:"description_html"`
	ResolutionHTML  string          `json:"resolution_html,omitempty"`
	StatusTone      string          `json:"status_tone"`
	PriorityTone    string          `json:"priority_tone"`
	Capabilities    CapabilitiesDTO `json:"capabilities"`
}

type ComplaintListItemDTO struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	CustomerID     string `json:"customer_id"`
	CustomerName   string `json:"customer_name"`
	PolicyNumber   string `json:"policy_number"`
	Category       string `json:"category"`
	Priority       string `json:"priority"`
	Status         string `json:"status"`
	Subject        string `json:"subject"`
	AssignedTo     string `json:"assigned_to,omitempty"`
	AssignedToName string `json:"assigned_to_name,omitempty"`
	CommentCount   int    `json:"comment_count"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type StatsDTO struct {
	Total      int `json:"total"`
	Submitted  int `json:"submitted"`
	Assigned   int `json:"assigned"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
}

type AgentWorkloadDTO struct {
	AgentID   string `json:"agent_id"`
	AgentName string `json:"agent_name"`
	Total     int    `json:"total"`
	Resolved  int    `json:"resolved"`
	Pending   int    `json:"pending"`
}

func ToComplaintDTO(c *complaint.Complaint) *ComplaintDTO {
	if c == nil {
		return nil
	}

	history := c.History()
	historyDTOs := make([]HistoryEntryDTO, 0, len(history))
	for _, h := range history {
		historyDTOs = append(historyDTOs, HistoryEntryDTO{
			Status:        h.Status().String(),
			ChangedBy:     h.ChangedBy(),
			ChangedByName: h.ChangedByName(),
			ChangedAt:     h.ChangedAt(),
			Notes:         h.Notes(),
		})
	}

	comments := c.Comments()
	commentDTOs := make([]CommentDTO, 0, len(comments))
	for _, cm := range comments {
		commentDTOs = append(commentDTOs, ToCommentDTO(cm))
	}

	return &ComplaintDTO{
		ID:             c.ID(),
		Code:           c.Code(),
		CustomerID:     c.CustomerID(),
		CustomerName:   c.CustomerName(),
		PolicyNumber:   c.PolicyNumber(),
		Category:       c.Category().String(),
		Priority:       c.Priority().String(),
		Status:         c.Status().String(),
		Subject:        c.Subject(),
		Description:    c.Description(),
		Resolution:     c.Resolution(),
		AssignedTo:     c.AssignedTo(),
		AssignedToName: c.AssignedToName(),
		StatusHistory:  historyDTOs,
		Comments:       commentDTOs,
		IsArchived:     c.IsArchived(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}

func ToCommentDTO(c complaint.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		UserID:    c.UserID(),
		UserName:  c.UserName(),
		Text:      c.Text(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToComplaintListItemDTO(c *complaint.Complaint) ComplaintListItemDTO {
	return ComplaintListItemDTO{
		ID:             c.ID(),
		Code:           c.Code(),
		CustomerID:     c.CustomerID(),
		CustomerName:   c.CustomerName(),
		PolicyNumber:   c.PolicyNumber(),
		Category:       c.Category().String(),
		Priority:       c.Priority().String(),
		Status:         c.Status().String(),
		Subject:        c.Subject(),
		AssignedTo:     c.AssignedTo(),
		AssignedToName: c.AssignedToName(),
		CommentCount:   len(c.Comments()),
		CreatedAt:      c.CreatedAt().Format(time.RFC3339),
		UpdatedAt:      c.UpdatedAt().Format(time.RFC3339),
	}
}

func ToStatsDTO(s complaint.Stats) StatsDTO {
	return StatsDTO{
		Total:      s.Total,
		Submitted:  s.Submitted,
		Assigned:   s.Assigned,
		InProgress: s.InProgress,
		Resolved:   s.Resolved,
		Closed:     s.Closed,
	}
}

func ToAgentWorkloadDTOs(items []complaint.AgentWorkload) []AgentWorkloadDTO {
	out := make([]AgentWorkloadDTO, 0, len(items))
	for _, w := range items {
		out = append(out, AgentWorkloadDTO{
			AgentID:   w.AgentID,
			AgentName: w.AgentName,
			Total:     w.Total,
			Resolved:  w.Resolved,
			Pending:   w.Pending,
		})
	}
	return out
}
