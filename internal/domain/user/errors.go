package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrNoSession      = errors.New("no session")
	ErrInvalidSession = errors.New("invalid session")
)
