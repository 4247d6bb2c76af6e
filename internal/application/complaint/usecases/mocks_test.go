package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"complaintdesk/internal/domain/complaint"
	"complaintdesk/internal/domain/permission"
	"complaintdesk/internal/domain/shared/events"
)

type mockComplaintRepository struct {
	InsertFunc        func(ctx context.Context, c *complaint.Complaint) error
	GetByIDOrCodeFunc func(ctx context.Context, key string) (*complaint.Complaint, error)
	MutateFunc        func(ctx context.Context, key string, fn complaint.MutateFunc) (*complaint.Complaint, error)
	ListFunc          func(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error)
}

func (m *mockComplaintRepository) Insert(ctx context.Context, c *complaint.Complaint) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) GetByIDOrCode(ctx context.Context, key string) (*complaint.Complaint, error) {
	if m.GetByIDOrCodeFunc != nil {
		return m.GetByIDOrCodeFunc(ctx, key)
	}
	return nil, complaint.ErrComplaintNotFound
}

func (m *mockComplaintRepository) Mutate(ctx context.Context, key string, fn complaint.MutateFunc) (*complaint.Complaint, error) {
	if m.MutateFunc != nil {
		return m.MutateFunc(ctx, key, fn)
	}
	return nil, complaint.ErrComplaintNotFound
}

func (m *mockComplaintRepository) List(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
	err    error
}

func (m *mockPublisher) Publish(event events.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.err
}

func (m *mockPublisher) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.GetEventType())
	}
	return out
}

type mockCodeGenerator struct {
	code string
	err  error
}

func (m *mockCodeGenerator) Generate(ctx context.Context, at time.Time) (string, error) {
	return m.code, m.err
}

// sequenceIDs issues prefix-1, prefix-2, ...
type sequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (s *sequenceIDs) New(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

type mockEnforcer struct {
	allowed map[string]bool
	err     error
}

func (m *mockEnforcer) Enforce(role string, resource permission.Resource, action permission.Action) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.allowed[role+"/"+string(action)], nil
}

type failingRenderer struct{}

func (failingRenderer) Render(string) (string, error) {
	return "", fmt.Errorf("render failed")
}

// submittedComplaint builds a fresh Submitted complaint for mock-backed tests.
func submittedComplaint(id, code string) *complaint.Complaint {
	c, err := complaint.NewComplaint(
		id,
		code,
		complaint.Actor{ID: "user-1", Name: "Rajesh Kumar"},
		"POL-2024-001234",
		"Claims",
		"High",
		"Claim Settlement Delay",
		"Please **expedite**",
		time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		panic(err)
	}
	return c
}

// applyTo runs fn against c the way the store would.
func applyTo(c *complaint.Complaint) func(ctx context.Context, key string, fn complaint.MutateFunc) (*complaint.Complaint, error) {
	return func(ctx context.Context, key string, fn complaint.MutateFunc) (*complaint.Complaint, error) {
		if !c.MatchesKey(key) {
			return nil, complaint.ErrComplaintNotFound
		}
		return fn(c)
	}
}
