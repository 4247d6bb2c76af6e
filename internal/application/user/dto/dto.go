package dto

import (
	"time"

	"complaintdesk/internal/domain/user"
)

// UserDTO is the public view of an identity. Credentials never leave the
// directory.
type UserDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PolicyNumber string    `json:"policy_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Permissions  []string  `json:"permissions,omitempty"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		Role:         u.Role().String(),
		PolicyNumber: u.PolicyNumber(),
		CreatedAt:    u.CreatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, *ToUserDTO(u))
	}
	return out
}
