package usecases

import (
	"complaintdesk/internal/domain/complaint"
	"complaintdesk/internal/shared/errors"
)

// View selects which slice of the collection a caller sees.
type View string

const (
	ViewAll      View = "all"
	ViewCustomer View = "customer"
	ViewAgent    View = "agent"
)

// scope narrows filter to view. Customer and agent views need a user id.
func scope(filter complaint.Filter, view View, userID string) (complaint.Filter, error) {
	switch view {
	case "", ViewAll:
	case ViewCustomer:
		if userID == "" {
			return filter, errors.NewValidationError("customer ID is required")
		}
		filter.CustomerID = &userID
	case ViewAgent:
		if userID == "" {
			return filter, errors.NewValidationError("agent ID is required")
		}
		filter.AssignedTo = &userID
	default:
		return filter, errors.NewValidationError("invalid view: " + string(view))
	}
	return filter, nil
}
