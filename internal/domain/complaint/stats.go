package complaint

import (
	vo "complaintdesk/internal/domain/complaint/valueobjects"
)

// Stats counts complaints by status. Total always equals the sum of the
// per-status counts.
type Stats struct {
	Total      int
	Submitted  int
	Assigned   int
	InProgress int
	Resolved   int
	Closed     int
}

func (s *Stats) add(status vo.Status) {
	switch status {
	case vo.StatusSubmitted:
		s.Submitted++
	case vo.StatusAssigned:
		s.Assigned++
	case vo.StatusInProgress:
		s.InProgress++
	case vo.StatusResolved:
		s.Resolved++
	case vo.StatusClosed:
		s.Closed++
	default:
		return
	}
	s.Total++
}

// Count returns the count for one status.
func (s Stats) Count(status vo.Status) int {
	switch status {
	case vo.StatusSubmitted:
		return s.Submitted
	case vo.StatusAssigned:
		return s.Assigned
	case vo.StatusInProgress:
		return s.InProgress
	case vo.StatusResolved:
		return s.Resolved
	case vo.StatusClosed:
		return s.Closed
	}
	return 0
}

// ComputeStats counts the non-archived complaints in items.
func ComputeStats(items []*Complaint) Stats {
	var s Stats
	for _, c := range items {
		if c.IsArchived() {
			continue
		}
		s.add(c.Status())
	}
	return s
}

// AgentWorkload summarizes the non-archived complaints assigned to one agent.
type AgentWorkload struct {
	AgentID   string
	AgentName string
	Total     int
	Resolved  int
	Pending   int
}

// ComputeWorkload returns one row per agent, in the order given, counting
// Resolved and Closed as resolved and every other status as pending.
func ComputeWorkload(agents []Actor, items []*Complaint) []AgentWorkload {
	rows := make([]AgentWorkload, len(agents))
	index := make(map[string]int, len(agents))
	for i, a := range agents {
		rows[i] = AgentWorkload{AgentID: a.ID, AgentName: a.Name}
		index[a.ID] = i
	}

	for _, c := range items {
		if c.IsArchived() || !c.IsAssigned() {
			continue
		}
		i, ok := index[c.AssignedTo()]
		if !ok {
			continue
		}
		rows[i].Total++
		if c.Status().IsFinished() {
			rows[i].Resolved++
		} else {
			rows[i].Pending++
		}
	}
	return rows
}
