package complaint

import (
	"fmt"
	"strings"

	vo "complaintdesk/internal/domain/complaint/valueobjects"
)

const (
	PolicyPermissive = "permissive"
	PolicyStrict     = "strict"
)

// TransitionPolicy decides which status changes and assignments a complaint
// accepts.
type TransitionPolicy interface {
	Name() string
	CheckStatusChange(from, to vo.Status) error
	CheckAssign(current vo.Status) error
}

// PermissivePolicy lets any status move to any status, including backwards
// and to the same value, and allows assignment in every state.
type PermissivePolicy struct{}

func (PermissivePolicy) Name() string { return PolicyPermissive }

func (PermissivePolicy) CheckStatusChange(from, to vo.Status) error { return nil }

func (PermissivePolicy) CheckAssign(current vo.Status) error { return nil }

// StrictPolicy enforces the lifecycle graph on status changes and refuses to
// assign a Closed complaint.
type StrictPolicy struct{}

func (StrictPolicy) Name() string { return PolicyStrict }

func (StrictPolicy) CheckStatusChange(from, to vo.Status) error {
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s to %s", ErrTransitionNotAllowed, from, to)
	}
	return nil
}

func (StrictPolicy) CheckAssign(current vo.Status) error {
	if current == vo.StatusClosed {
		return fmt.Errorf("%w: cannot assign a %s complaint", ErrTransitionNotAllowed, current)
	}
	return nil
}

// NewTransitionPolicy returns the policy configured by name. An empty name
// selects the permissive policy.
func NewTransitionPolicy(name string) (TransitionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyPermissive:
		return PermissivePolicy{}, nil
	case PolicyStrict:
		return StrictPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown transition policy: %s", name)
	}
}
