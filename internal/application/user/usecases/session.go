package usecases

import (
	"context"
	"errors"
	"sync"

	"complaintdesk/internal/domain/user"
	"complaintdesk/internal/shared/logger"
)

// SessionManager holds the single current-session identity and mirrors it
// into a durable slot. Slot failures are logged and never surfaced; the
// in-memory session is authoritative for the life of the process.
//
// writeMu orders sign-ins and sign-outs so the slot always ends up holding
// the same identity as memory. mu only guards current, so readers never wait
// on slot I/O.
type SessionManager struct {
	store   user.SessionStore
	logger  logger.Interface
	writeMu sync.Mutex
	mu      sync.RWMutex
	current *user.User
}

// NewSessionManager restores the session from store once. Anything other
// than a valid stored identity leaves the manager signed out.
func NewSessionManager(ctx context.Context, store user.SessionStore, logger logger.Interface) *SessionManager {
	m := &SessionManager{
		store:  store,
		logger: logger,
	}

	u, err := store.Load(ctx)
	switch {
	case err == nil:
		m.current = u
		logger.Infow("session restored", "user_id", u.ID(), "role", u.Role())
	case errors.Is(err, user.ErrNoSession):
		logger.Debugw("no stored session")
	default:
		logger.Warnw("discarding stored session", "error", err)
	}

	return m
}

// Current returns the signed-in identity, or nil.
func (m *SessionManager) Current() *user.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *SessionManager) IsAuthenticated() bool {
	return m.Current() != nil
}

// SignIn makes u the current session and persists it.
func (m *SessionManager) SignIn(ctx context.Context, u *user.User) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.mu.Lock()
	m.current = u
	m.mu.Unlock()

	if err := m.store.Save(ctx, u); err != nil {
		m.logger.Errorw("failed to persist session", "user_id", u.ID(), "error", err)
	}
}

// SignOut clears the current session and the durable slot.
func (m *SessionManager) SignOut(ctx context.Context) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		m.logger.Errorw("failed to clear stored session", "error", err)
	}
}
