package complaint

import (
	"fmt"
	"slices"
	"time"

	vo "complaintdesk/internal/domain/complaint/valueobjects"
)

// Complaint is an immutable snapshot. Every mutator returns a new *Complaint
// and leaves the receiver untouched, so a snapshot handed to a reader never
// changes underneath it.
type Complaint struct {
	id             string
	code           string
	customerID     string
	customerName   string
	policyNumber   string
	category       vo.Category
	priority       vo.Priority
	status         vo.Status
	subject        string
	description    string
	resolution     string
	assignedTo     string
	assignedToName string
	history        []HistoryEntry
	comments       []Comment
	archived       bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewComplaint creates a Submitted complaint whose history holds the single
// submission entry attributed to the customer.
func NewComplaint(
	id string,
	code string,
	customer Actor,
	policyNumber string,
	category vo.Category,
	priority vo.Priority,
	subject string,
	description string,
	now time.Time,
) (*Complaint, error) {
	if id == "" {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if code == "" {
		return nil, fmt.Errorf("complaint code is required")
	}
	if customer.ID == "" {
		return nil, fmt.Errorf("customer ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Complaint{
		id:           id,
		code:         code,
		customerID:   customer.ID,
		customerName: customer.Name,
		policyNumber: policyNumber,
		category:     category,
		priority:     priority,
		status:       vo.StatusSubmitted,
		subject:      subject,
		description:  description,
		history:      []HistoryEntry{NewHistoryEntry(vo.StatusSubmitted, customer, now, NoteSubmitted)},
		comments:     []Comment{},
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructParams carries a complaint loaded from fixtures or another
// store.
type ReconstructParams struct {
	ID             string
	Code           string
	CustomerID     string
	CustomerName   string
	PolicyNumber   string
	Category       vo.Category
	Priority       vo.Priority
	Status         vo.Status
	Subject        string
	Description    string
	Resolution     string
	AssignedTo     string
	AssignedToName string
	History        []HistoryEntry
	Comments       []Comment
	Archived       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func ReconstructComplaint(p ReconstructParams) (*Complaint, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if p.Code == "" {
		return nil, fmt.Errorf("complaint code is required")
	}
	if !p.Category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", p.Category)
	}
	if !p.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", p.Priority)
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", p.Status)
	}
	if len(p.History) == 0 {
		return nil, fmt.Errorf("complaint %s has no status history", p.Code)
	}
	if p.UpdatedAt.Before(p.CreatedAt) {
		return nil, fmt.Errorf("complaint %s updated before it was created", p.Code)
	}

	comments := slices.Clone(p.Comments)
	if comments == nil {
		comments = []Comment{}
	}

	return &Complaint{
		id:             p.ID,
		code:           p.Code,
		customerID:     p.CustomerID,
		customerName:   p.CustomerName,
		policyNumber:   p.PolicyNumber,
		category:       p.Category,
		priority:       p.Priority,
		status:         p.Status,
		subject:        p.Subject,
		description:    p.Description,
		resolution:     p.Resolution,
		assignedTo:     p.AssignedTo,
		assignedToName: p.AssignedToName,
		history:        slices.Clone(p.History),
		comments:       comments,
		archived:       p.Archived,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}, nil
}

func (c *Complaint) ID() string {
	return c.id
}

func (c *Complaint) Code() string {
	return c.code
}

func (c *Complaint) CustomerID() string {
	return c.customerID
}

func (c *Complaint) CustomerName() string {
	return c.customerName
}

func (c *Complaint) PolicyNumber() string {
	return c.policyNumber
}

func (c *Complaint) Category() vo.Category {
	return c.category
}

func (c *Complaint) Priority() vo.Priority {
	return c.priority
}

func (c *Complaint) Status() vo.Status {
	return c.status
}

func (c *Complaint) Subject() string {
	return c.subject
}

func (c *Complaint) Description() string {
	return c.description
}

func (c *Complaint) Resolution() string {
	return c.resolution
}

func (c *Complaint) AssignedTo() string {
	return c.assignedTo
}

func (c *Complaint) AssignedToName() string {
	return c.assignedToName
}

func (c *Complaint) IsAssigned() bool {
	return c.assignedTo != ""
}

func (c *Complaint) History() []HistoryEntry {
	return slices.Clone(c.history)
}

func (c *Complaint) Comments() []Comment {
	return slices.Clone(c.comments)
}

func (c *Complaint) IsArchived() bool {
	return c.archived
}

func (c *Complaint) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Complaint) UpdatedAt() time.Time {
	return c.updatedAt
}

// MatchesKey reports whether key is this complaint's id or code.
func (c *Complaint) MatchesKey(key string) bool {
	return key != "" && (key == c.id || key == c.code)
}

// ChangeStatus appends a history entry and moves to next, subject to policy.
// A non-empty resolution replaces the stored resolution text.
func (c *Complaint) ChangeStatus(
	policy TransitionPolicy,
	next vo.Status,
	actor Actor,
	notes string,
	resolution string,
	now time.Time,
) (*Complaint, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", next)
	}
	if actor.ID == "" {
		return nil, fmt.Errorf("actor ID is required")
	}
	if err := policy.CheckStatusChange(c.status, next); err != nil {
		return nil, err
	}

	n := c.clone()
	at := n.touch(now)
	n.status = next
	n.history = append(n.history, NewHistoryEntry(next, actor, at, notes))
	if resolution != "" {
		n.resolution = resolution
	}
	return n, nil
}

// AssignTo records agent as the assignee and forces the status to Assigned,
// overwriting any previous assignee.
func (c *Complaint) AssignTo(policy TransitionPolicy, agent Actor, manager Actor, now time.Time) (*Complaint, error) {
	if agent.ID == "" {
		return nil, fmt.Errorf("agent ID is required")
	}
	if manager.ID == "" {
		return nil, fmt.Errorf("manager ID is required")
	}
	if err := policy.CheckAssign(c.status); err != nil {
		return nil, err
	}

	n := c.clone()
	at := n.touch(now)
	n.assignedTo = agent.ID
	n.assignedToName = agent.Name
	n.status = vo.StatusAssigned
	n.history = append(n.history, NewHistoryEntry(vo.StatusAssigned, manager, at, fmt.Sprintf(noteAssignedFmt, agent.Name)))
	return n, nil
}

func (c *Complaint) AddComment(comment Comment, now time.Time) (*Complaint, error) {
	if comment.ID() == "" {
		return nil, fmt.Errorf("comment ID is required")
	}

	n := c.clone()
	n.touch(now)
	n.comments = append(n.comments, comment)
	return n, nil
}

// Archive hides the complaint from listings. Archiving twice only bumps
// updatedAt.
func (c *Complaint) Archive(now time.Time) *Complaint {
	n := c.clone()
	n.touch(now)
	n.archived = true
	return n
}

func (c *Complaint) clone() *Complaint {
	n := *c
	n.history = slices.Clone(c.history)
	n.comments = slices.Clone(c.comments)
	if n.comments == nil {
		n.comments = []Comment{}
	}
	return &n
}

// touch advances updatedAt to now, or by one nanosecond when the clock has
// not moved past the previous value, and returns the new timestamp.
func (c *Complaint) touch(now time.Time) time.Time {
	if !now.After(c.updatedAt) {
		now = c.updatedAt.Add(time.Nanosecond)
	}
	c.updatedAt = now
	return now
}
