// Package seeds loads the demo user directory and complaints embedded in
// the binary.
package seeds

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"complaintdesk/internal/domain/complaint"
	vo "complaintdesk/internal/domain/complaint/valueobjects"
	"complaintdesk/internal/domain/user"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Fixtures struct {
	Users      []UserFixture      `yaml:"users"`
	Complaints []ComplaintFixture `yaml:"complaints"`
}

type UserFixture struct {
	ID           string    `yaml:"id"`
	Name         string    `yaml:"name"`
	Email        string    `yaml:"email"`
	Role         string    `yaml:"role"`
	PolicyNumber string    `yaml:"policy_number"`
	CreatedAt    time.Time `yaml:"created_at"`
}

type HistoryFixture struct {
	Status        string    `yaml:"status"`
	ChangedBy     string    `yaml:"changed_by"`
	ChangedByName string    `yaml:"changed_by_name"`
	ChangedAt     time.Time `yaml:"changed_at"`
	Notes         string    `yaml:"notes"`
}

type CommentFixture struct {
	ID        string    `yaml:"id"`
	UserID    string    `yaml:"user_id"`
	UserName  string    `yaml:"user_name"`
	Text      string    `yaml:"text"`
	CreatedAt time.Time `yaml:"created_at"`
}

type ComplaintFixture struct {
	ID             string           `yaml:"id"`
	Code           string           `yaml:"code"`
	CustomerID     string           `yaml:"customer_id"`
	CustomerName   string           `yaml:"customer_name"`
	PolicyNumber   string           `yaml:"policy_number"`
	Category       string           `yaml:"category"`
	Priority       string           `yaml:"priority"`
	Status         string           `yaml:"status"`
	Subject        string           `yaml:"subject"`
	Description    string           `yaml:"description"`
	Resolution     string           `yaml:"resolution"`
	AssignedTo     string           `yaml:"assigned_to"`
	AssignedToName string           `yaml:"assigned_to_name"`
	History        []HistoryFixture `yaml:"history"`
	Comments       []CommentFixture `yaml:"comments"`
	Archived       bool             `yaml:"archived"`
	CreatedAt      time.Time        `yaml:"created_at"`
	UpdatedAt      time.Time        `yaml:"updated_at"`
}

// Default parses the embedded fixture set.
func Default() (*Fixtures, error) {
	return Parse(defaultFixtures)
}

// Parse decodes a fixture document, rejecting unknown keys.
func Parse(data []byte) (*Fixtures, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return &f, nil
}

// CodeObserver is told about every seeded complaint code.
type CodeObserver interface {
	Observe(code string)
}

// Loader writes fixtures into the directory and the complaint repository.
type Loader struct {
	directory  user.Directory
	complaints complaint.Repository
	codes      CodeObserver
	hasher     user.PasswordHasher
}

// NewLoader returns a loader. When hasher is nil seeded users get no
// password hash.
func NewLoader(directory user.Directory, complaints complaint.Repository, codes CodeObserver, hasher user.PasswordHasher) *Loader {
	return &Loader{
		directory:  directory,
		complaints: complaints,
		codes:      codes,
		hasher:     hasher,
	}
}

// Result reports how many records were seeded.
type Result struct {
	Users      int
	Complaints int
}

// Load seeds f. Every seeded user shares password, hashed once. Complaints
// are inserted last to first so the collection keeps the fixture order.
func (l *Loader) Load(ctx context.Context, f *Fixtures, password string) (Result, error) {
	var res Result

	hash := ""
	if l.hasher != nil && password != "" {
		h, err := l.hasher.Hash(password)
		if err != nil {
			return res, fmt.Errorf("failed to hash seed password: %w", err)
		}
		hash = h
	}

	for _, uf := range f.Users {
		u, err := user.NewUser(uf.ID, uf.Name, uf.Email, user.Role(uf.Role), uf.PolicyNumber, hash, uf.CreatedAt.UTC())
		if err != nil {
			return res, fmt.Errorf("seed user %s: %w", uf.ID, err)
		}
		if err := l.directory.Add(ctx, u); err != nil {
			return res, fmt.Errorf("seed user %s: %w", uf.ID, err)
		}
		res.Users++
	}

	for i := len(f.Complaints) - 1; i >= 0; i-- {
		c, err := f.Complaints[i].toDomain()
		if err != nil {
			return res, fmt.Errorf("seed complaint %s: %w", f.Complaints[i].Code, err)
		}
		if err := l.complaints.Insert(ctx, c); err != nil {
			return res, fmt.Errorf("seed complaint %s: %w", c.Code(), err)
		}
		if l.codes != nil {
			l.codes.Observe(c.Code())
		}
		res.Complaints++
	}

	return res, nil
}

func (cf ComplaintFixture) toDomain() (*complaint.Complaint, error) {
	history := make([]complaint.HistoryEntry, 0, len(cf.History))
	for _, h := range cf.History {
		status, err := vo.NewStatus(h.Status)
		if err != nil {
			return nil, err
		}
		actor := complaint.Actor{ID: h.ChangedBy, Name: h.ChangedByName}
		history = append(history, complaint.NewHistoryEntry(status, actor, h.ChangedAt.UTC(), h.Notes))
	}

	comments := make([]complaint.Comment, 0, len(cf.Comments))
	for _, c := range cf.Comments {
		cm, err := complaint.NewComment(c.ID, complaint.Actor{ID: c.UserID, Name: c.UserName}, c.Text, c.CreatedAt.UTC())
		if err != nil {
			return nil, err
		}
		comments = append(comments, cm)
	}

	return complaint.ReconstructComplaint(complaint.ReconstructParams{
		ID:             cf.ID,
		Code:           cf.Code,
		CustomerID:     cf.CustomerID,
		CustomerName:   cf.CustomerName,
		PolicyNumber:   cf.PolicyNumber,
		Category:       vo.Category(cf.Category),
		Priority:       vo.Priority(cf.Priority),
		Status:         vo.Status(cf.Status),
		Subject:        cf.Subject,
		Description:    cf.Description,
		Resolution:     cf.Resolution,
		AssignedTo:     cf.AssignedTo,
		AssignedToName: cf.AssignedToName,
		History:        history,
		Comments:       comments,
		Archived:       cf.Archived,
		CreatedAt:      cf.CreatedAt.UTC(),
		UpdatedAt:      cf.UpdatedAt.UTC(),
	})
}
