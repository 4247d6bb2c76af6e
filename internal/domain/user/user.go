package user

import (
	"fmt"
	"strings"
	"time"
)

// User is an identity in the directory. It has no mutators; a user never
// changes once created.
type User struct {
	id           string
	name         string
	email        string
	role         Role
	policyNumber string
	passwordHash string
	createdAt    time.Time
}

func NewUser(
	id string,
	name string,
	email string,
	role Role,
	policyNumber string,
	passwordHash string,
	createdAt time.Time,
) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		email:        strings.TrimSpace(email),
		role:         role,
		policyNumber: policyNumber,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() string {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) PolicyNumber() string {
	return u.policyNumber
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) HasPassword() bool {
	return u.passwordHash != ""
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// WithoutCredentials returns a copy with the password hash dropped, for
// values leaving the directory such as the persisted session.
func (u *User) WithoutCredentials() *User {
	c := *u
	c.passwordHash = ""
	return &c
}
