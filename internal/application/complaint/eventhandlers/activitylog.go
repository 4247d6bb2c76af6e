// Package eventhandlers reacts to complaint domain events.
package eventhandlers

import (
	"complaintdesk/internal/domain/complaint"
	"complaintdesk/internal/domain/shared/events"
	"complaintdesk/internal/shared/logger"
)

var _ events.EventHandler = (*ActivityLogHandler)(nil)

// ActivityLogHandler writes one structured log line per complaint event.
type ActivityLogHandler struct {
	logger logger.Interface
}

func NewActivityLogHandler(log logger.Interface) *ActivityLogHandler {
	return &ActivityLogHandler{logger: log.Named("activity")}
}

// Register subscribes h to every complaint event type.
func (h *ActivityLogHandler) Register(d events.EventDispatcher) error {
	for _, t := range complaint.EventTypes() {
		if err := d.Subscribe(t, h); err != nil {
			return err
		}
	}
	return nil
}

func (h *ActivityLogHandler) CanHandle(eventType string) bool {
	switch eventType {
	case complaint.EventSubmitted, complaint.EventAssigned, complaint.EventStatusChanged,
		complaint.EventCommentAdded, complaint.EventArchived:
		return true
	}
	return false
}

func (h *ActivityLogHandler) Handle(event events.DomainEvent) error {
	fields := []interface{}{
		"event_type", event.GetEventType(),
		"complaint_id", event.GetAggregateID(),
		"occurred_at", event.GetOccurredAt(),
	}

	switch e := event.(type) {
	case complaint.SubmittedEvent:
		fields = append(fields, "code", e.Code, "customer_id", e.CustomerID, "category", e.Category, "priority", e.Priority)
	case complaint.AssignedEvent:
		fields = append(fields, "code", e.Code, "agent_id", e.AgentID, "assigned_by", e.AssignedBy)
	case complaint.StatusChangedEvent:
		fields = append(fields, "code", e.Code, "from", e.OldStatus, "to", e.NewStatus, "changed_by", e.ChangedBy)
	case complaint.CommentAddedEvent:
		fields = append(fields, "code", e.Code, "comment_id", e.CommentID, "author_id", e.AuthorID)
	case complaint.ArchivedEvent:
		fields = append(fields, "code", e.Code)
	}

	h.logger.Infow("complaint activity", fields...)
	return nil
}
