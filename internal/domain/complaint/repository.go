package complaint

import (
	"context"

	vo "complaintdesk/internal/domain/complaint/valueobjects"
)

// MutateFunc derives a new snapshot from the current one. Returning an error
// leaves the stored complaint unchanged.
type MutateFunc func(current *Complaint) (*Complaint, error)

// Repository owns the complaint collection. Lookups accept either the
// internal id or the complaint code and fail with ErrComplaintNotFound when
// neither matches.
type Repository interface {
	// Insert places c at the front of the collection.
	Insert(ctx context.Context, c *Complaint) error
	GetByIDOrCode(ctx context.Context, key string) (*Complaint, error)
	// Mutate resolves key to the canonical id and swaps in fn's result
	// atomically with respect to other writers.
	Mutate(ctx context.Context, key string, fn MutateFunc) (*Complaint, error)
	List(ctx context.Context, filter Filter) ([]*Complaint, int64, error)
}

// Filter selects complaints for a view. Archived complaints are excluded
// unless IncludeArchived is set.
type Filter struct {
	CustomerID      *string
	AssignedTo      *string
	Status          *vo.Status
	Priority        *vo.Priority
	Category        *vo.Category
	Search          string
	IncludeArchived bool
	SortBy          SortOrder
	Page            int
	PageSize        int
}
