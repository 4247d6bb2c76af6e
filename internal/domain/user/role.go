package user

import "fmt"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleManager  Role = "manager"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAgent, RoleManager:
		return true
	}
	return false
}

// IsStaff is true for agents and managers.
func (r Role) IsStaff() bool {
	switch r {
	case RoleAgent, RoleManager:
		return true
	case RoleCustomer:
		return false
	}
	return false
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
