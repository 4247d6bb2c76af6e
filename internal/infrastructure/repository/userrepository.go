package repository

import (
	"context"
	"fmt"
	"sync"

	"complaintdesk/internal/domain/user"
)

var _ user.Directory = (*UserRepository)(nil)

// UserRepository is the in-memory user directory, indexed by id and by
// case-folded email.
type UserRepository struct {
	mu      sync.RWMutex
	users   []*user.User
	byID    map[string]*user.User
	byEmail map[string]*user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

// Add appends u. A second identity with an already known email is accepted;
// email lookups keep resolving to the first one registered.
func (r *UserRepository) Add(ctx context.Context, u *user.User) error {
	if u == nil {
		return fmt.Errorf("user cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[u.ID()]; exists {
		return fmt.Errorf("user %s already exists", u.ID())
	}

	r.users = append(r.users, u)
	r.byID[u.ID()] = u
	key := user.NormalizeEmail(u.Email())
	if _, taken := r.byEmail[key]; !taken {
		r.byEmail[key] = u
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[user.NormalizeEmail(email)]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

// ListByRole returns users with role in registration order.
func (r *UserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*user.User, 0)
	for _, u := range r.users {
		if u.Role() == role {
			out = append(out, u)
		}
	}
	return out, nil
}
