package user

import "context"

// Directory is the registry of known identities.
type Directory interface {
	Add(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	// GetByEmail matches case-insensitively and returns ErrUserNotFound on
	// no match.
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByRole(ctx context.Context, role Role) ([]*User, error)
}

// SessionStore is the durable slot that holds the current-session identity.
// Load returns ErrNoSession when the slot is empty and ErrInvalidSession
// when its content cannot be trusted.
type SessionStore interface {
	Load(ctx context.Context) (*User, error)
	Save(ctx context.Context, u *User) error
	Clear(ctx context.Context) error
}

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
