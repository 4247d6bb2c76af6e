package complaint

import (
	"time"

	vo "complaintdesk/internal/domain/complaint/valueobjects"
)

const (
	NoteSubmitted   = "Complaint submitted"
	noteAssignedFmt = "Assigned to %s"
)

// HistoryEntry is one immutable line of a complaint's status audit trail.
type HistoryEntry struct {
	status        vo.Status
	changedBy     string
	changedByName string
	changedAt     time.Time
	notes         string
}

func NewHistoryEntry(status vo.Status, actor Actor, at time.Time, notes string) HistoryEntry {
	return HistoryEntry{
		status:        status,
		changedBy:     actor.ID,
		changedByName: actor.Name,
		changedAt:     at,
		notes:         notes,
	}
}

func (h HistoryEntry) Status() vo.Status { return h.status }
func (h HistoryEntry) ChangedBy() string { return h.changedBy }
func (h HistoryEntry) ChangedByName() string { return h.changedByName }
func (h HistoryEntry) ChangedAt() time.Time { return h.changedAt }
func (h HistoryEntry) Notes() string { return h.notes }
