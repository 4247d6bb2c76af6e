package complaint

import (
	"time"

	"complaintdesk/internal/domain/shared/events"
)

const (
	EventSubmitted     = "complaint.submitted"
	EventAssigned      = "complaint.assigned"
	EventStatusChanged = "complaint.status_changed"
	EventCommentAdded  = "complaint.comment_added"
	EventArchived      = "complaint.archived"
)

// EventTypes lists every complaint event type.
func EventTypes() []string {
	return []string{EventSubmitted, EventAssigned, EventStatusChanged, EventCommentAdded, EventArchived}
}

type SubmittedEvent struct {
	events.BaseEvent
	Code       string
	CustomerID string
	Category   string
	Priority   string
}

func NewSubmittedEvent(c *Complaint) SubmittedEvent {
	return SubmittedEvent{
		BaseEvent:  events.NewBaseEvent(c.ID(), EventSubmitted, c.CreatedAt()),
		Code:       c.Code(),
		CustomerID: c.CustomerID(),
		Category:   c.Category().String(),
		Priority:   c.Priority().String(),
	}
}

type AssignedEvent struct {
	events.BaseEvent
	Code       string
	AgentID    string
	AgentName  string
	AssignedBy string
}

func NewAssignedEvent(c *Complaint, assignedBy string) AssignedEvent {
	return AssignedEvent{
		BaseEvent:  events.NewBaseEvent(c.ID(), EventAssigned, c.UpdatedAt()),
		Code:       c.Code(),
		AgentID:    c.AssignedTo(),
		AgentName:  c.AssignedToName(),
		AssignedBy: assignedBy,
	}
}

type StatusChangedEvent struct {
	events.BaseEvent
	Code      string
	OldStatus string
	NewStatus string
	ChangedBy string
}

func NewStatusChangedEvent(c *Complaint, oldStatus string, changedBy string) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent: events.NewBaseEvent(c.ID(), EventStatusChanged, c.UpdatedAt()),
		Code:      c.Code(),
		OldStatus: oldStatus,
		NewStatus: c.Status().String(),
		ChangedBy: changedBy,
	}
}

type CommentAddedEvent struct {
	events.BaseEvent
	Code      string
	CommentID string
	AuthorID  string
}

func NewCommentAddedEvent(c *Complaint, comment Comment) CommentAddedEvent {
	return CommentAddedEvent{
		BaseEvent: events.NewBaseEvent(c.ID(), EventCommentAdded, comment.CreatedAt()),
		Code:      c.Code(),
		CommentID: comment.ID(),
		AuthorID:  comment.UserID(),
	}
}

type ArchivedEvent struct {
	events.BaseEvent
	Code string
}

func NewArchivedEvent(c *Complaint, at time.Time) ArchivedEvent {
	return ArchivedEvent{
		BaseEvent: events.NewBaseEvent(c.ID(), EventArchived, at),
		Code:      c.Code(),
	}
}
