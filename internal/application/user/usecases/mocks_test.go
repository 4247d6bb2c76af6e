package usecases

import (
	"context"
	"errors"
	"sync"

	"complaintdesk/internal/domain/user"
)

// memorySessionStore is a SessionStore backed by a field. loadErr, saveErr
// and clearErr force the corresponding failure. beforeSave runs ahead of each
// write without holding the store lock.
type memorySessionStore struct {
	mu         sync.Mutex
	stored     *user.User
	loadErr    error
	saveErr    error
	clearErr   error
	saves      int
	clears     int
	beforeSave func(u *user.User)
}

func (s *memorySessionStore) current() *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stored
}

func (s *memorySessionStore) Load(ctx context.Context) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.stored == nil {
		return nil, user.ErrNoSession
	}
	return s.stored, nil
}

func (s *memorySessionStore) Save(ctx context.Context, u *user.User) error {
	if s.beforeSave != nil {
		s.beforeSave(u)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.stored = u
	return nil
}

func (s *memorySessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.stored = nil
	return nil
}

type mockDirectory struct {
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	ListByRoleFunc func(ctx context.Context, role user.Role) ([]*user.User, error)
}

func (m *mockDirectory) Add(ctx context.Context, u *user.User) error {
	return nil
}

func (m *mockDirectory) GetByID(ctx context.Context, id string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (m *mockDirectory) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockDirectory) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return nil, nil
}

// stubPermissions maps a role to its capabilities. A role mapped to nil
// fails the lookup.
type stubPermissions map[string][]string

func (s stubPermissions) PermissionsForRole(role string) ([]string, error) {
	perms, ok := s[role]
	if ok && perms == nil {
		return nil, errors.New("policy store unavailable")
	}
	return perms, nil
}

var errStoreDown = errors.New("store down")
