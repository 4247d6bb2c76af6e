package complaint

import "fmt"

// Actor is the id and display name of whoever performs an operation. The
// name is copied onto records as written and never re-synced.
type Actor struct {
	ID   string
	Name string
}

func NewActor(id, name string) (Actor, error) {
	if id == "" {
		return Actor{}, fmt.Errorf("actor ID is required")
	}
	return Actor{ID: id, Name: name}, nil
}
