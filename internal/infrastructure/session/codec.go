// Package session persists the current-session identity to a single durable
// slot, either a file or a Redis key.
package session

import (
	"complaintdesk/internal/domain/user"
)

// TokenCodec turns an identity into slot content and back.
type TokenCodec interface {
	Encode(u *user.User) (string, error)
	Decode(token string) (*user.User, error)
}
