package valueobjects

import "fmt"

// Status is the lifecycle state of a complaint. Values are the labels shown
// to users and exchanged over the API.
type Status string

const (
	StatusSubmitted  Status = "Submitted"
	StatusAssigned   Status = "Assigned"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

// AllStatuses lists statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusSubmitted, StatusAssigned, StatusInProgress, StatusResolved, StatusClosed}
}

// lifecycle is the directed graph enforced by the strict transition policy.
// Resolved and Closed complaints may only go back through an explicit reopen
// to In Progress.
var lifecycle = map[Status][]Status{
	StatusSubmitted:  {StatusAssigned},
	StatusAssigned:   {StatusInProgress},
	StatusInProgress: {StatusResolved},
	StatusResolved:   {StatusClosed, StatusInProgress},
	StatusClosed:     {StatusInProgress},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusAssigned, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle graph allows s -> next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range lifecycle[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsReopen reports whether s -> next moves a finished complaint back to work.
func (s Status) IsReopen(next Status) bool {
	return s.IsFinished() && next == StatusInProgress
}

// IsFinished is true for Resolved and Closed. Workload stats count these as
// resolved and everything else as pending.
func (s Status) IsFinished() bool {
	switch s {
	case StatusResolved, StatusClosed:
		return true
	case StatusSubmitted, StatusAssigned, StatusInProgress:
		return false
	}
	return false
}

// Tone is the badge style a dashboard renders for the status.
func (s Status) Tone() string {
	switch s {
	case StatusSubmitted:
		return "info"
	case StatusAssigned:
		return "accent"
	case StatusInProgress:
		return "warning"
	case StatusResolved:
		return "success"
	case StatusClosed:
		return "muted"
	}
	return "muted"
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid complaint status: %s", s)
	}
	return st, nil
}
