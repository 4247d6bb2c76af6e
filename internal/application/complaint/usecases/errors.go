package usecases

import (
	stderrors "errors"

	"complaintdesk/internal/domain/complaint"
	"complaintdesk/internal/domain/shared/events"
	"complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/logger"
)

// toAppError maps repository and domain failures onto the application error
// taxonomy. AppErrors pass through unchanged.
func toAppError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.IsAppError(err):
		return err
	case stderrors.Is(err, complaint.ErrComplaintNotFound):
		return errors.NewNotFoundError("complaint not found")
	case stderrors.Is(err, complaint.ErrTransitionNotAllowed):
		return errors.NewValidationError(err.Error())
	case stderrors.Is(err, complaint.ErrDuplicateCode):
		return errors.NewConflictError(err.Error())
	default:
		return errors.NewInternalError("failed to " + op)
	}
}

func publish(pub events.Publisher, log logger.Interface, event events.DomainEvent) {
	if pub == nil {
		return
	}
	if err := pub.Publish(event); err != nil {
		log.Warnw("failed to dispatch event",
			"event_type", event.GetEventType(),
			"aggregate_id", event.GetAggregateID(),
			"error", err)
	}
}
