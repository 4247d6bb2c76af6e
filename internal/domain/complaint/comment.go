package complaint

import (
	"fmt"
	"time"
)

type Comment struct {
	id        string
	userID    string
	userName  string
	text      string
	createdAt time.Time
}

// NewComment builds a comment. Empty text is the caller's concern; the
// complaint accepts whatever it is given.
func NewComment(id string, author Actor, text string, createdAt time.Time) (Comment, error) {
	if id == "" {
		return Comment{}, fmt.Errorf("comment ID is required")
	}
	if author.ID == "" {
		return Comment{}, fmt.Errorf("comment author is required")
	}
	return Comment{
		id:        id,
		userID:    author.ID,
		userName:  author.Name,
		text:      text,
		createdAt: createdAt,
	}, nil
}

func (c Comment) ID() string {
	return c.id
}

func (c Comment) UserID() string {
	return c.userID
}

func (c Comment) UserName() string {
	return c.userName
}

func (c Comment) Text() string {
	return c.text
}

func (c Comment) CreatedAt() time.Time {
	return c.createdAt
}
