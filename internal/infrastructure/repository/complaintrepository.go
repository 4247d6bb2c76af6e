package repository

import (
	"context"
	"fmt"
	"sync"

	"complaintdesk/internal/domain/complaint"
)

var _ complaint.Repository = (*ComplaintRepository)(nil)

// ComplaintRepository is the in-memory owner of every complaint. Records are
// immutable snapshots keyed by id, with a code -> id secondary index so a
// lookup by either key resolves to one canonical record.
type ComplaintRepository struct {
	mu       sync.RWMutex
	byID     map[string]*complaint.Complaint
	codeToID map[string]string
	// order holds ids most recent first. It is replaced, never modified in
	// place.
	order []string
}

func NewComplaintRepository() *ComplaintRepository {
	return &ComplaintRepository{
		byID:     make(map[string]*complaint.Complaint),
		codeToID: make(map[string]string),
		order:    []string{},
	}
}

func (r *ComplaintRepository) Insert(ctx context.Context, c *complaint.Complaint) error {
	if c == nil {
		return fmt.Errorf("complaint cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID()]; exists {
		return fmt.Errorf("complaint %s already exists", c.ID())
	}
	if _, exists := r.codeToID[c.Code()]; exists {
		return fmt.Errorf("%w: %s", complaint.ErrDuplicateCode, c.Code())
	}

	order := make([]string, 0, len(r.order)+1)
	order = append(order, c.ID())
	order = append(order, r.order...)

	r.byID[c.ID()] = c
	r.codeToID[c.Code()] = c.ID()
	r.order = order
	return nil
}

func (r *ComplaintRepository) GetByIDOrCode(ctx context.Context, key string) (*complaint.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.resolve(key)
	if !ok {
		return nil, complaint.ErrComplaintNotFound
	}
	return r.byID[id], nil
}

func (r *ComplaintRepository) Mutate(ctx context.Context, key string, fn complaint.MutateFunc) (*complaint.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.resolve(key)
	if !ok {
		return nil, complaint.ErrComplaintNotFound
	}

	current := r.byID[id]
	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	if next == nil || next.ID() != current.ID() || next.Code() != current.Code() {
		return nil, fmt.Errorf("mutation of complaint %s changed its identity", current.Code())
	}

	r.byID[id] = next
	return next, nil
}

func (r *ComplaintRepository) List(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
	r.mu.RLock()
	snapshot := make([]*complaint.Complaint, 0, len(r.order))
	for _, id := range r.order {
		snapshot = append(snapshot, r.byID[id])
	}
	r.mu.RUnlock()

	items, total := filter.Apply(snapshot)
	return items, total, nil
}

// Count returns the number of stored complaints, archived included.
func (r *ComplaintRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// resolve maps an id or a code to the canonical id. A key shaped like a code
// is looked up in the code index first; anything else is tried as an id
// before falling back to the code index.
func (r *ComplaintRepository) resolve(key string) (string, bool) {
	if complaint.IsCode(key) {
		if id, ok := r.codeToID[key]; ok {
			return id, true
		}
	}
	if _, ok := r.byID[key]; ok {
		return key, true
	}
	id, ok := r.codeToID[key]
	return id, ok
}
