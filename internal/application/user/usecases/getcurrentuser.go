package usecases

import (
	"context"

	"complaintdesk/internal/application/user/dto"
	"complaintdesk/internal/domain/permission"
	apperrors "complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/logger"
)

type GetCurrentUserUseCase struct {
	sessions    *SessionManager
	permissions permission.Lister
	logger      logger.Interface
}

func NewGetCurrentUserUseCase(sessions *SessionManager, permissions permission.Lister, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		sessions:    sessions,
		permissions: permissions,
		logger:      logger,
	}
}

// Execute returns the signed-in user with the capabilities of their role.
// A failing permission lookup leaves Permissions empty.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context) (*dto.UserDTO, error) {
	u := uc.sessions.Current()
	if u == nil {
		return nil, apperrors.NewUnauthorizedError("not signed in")
	}

	out := dto.ToUserDTO(u)
	if uc.permissions == nil {
		return out, nil
	}

	perms, err := uc.permissions.PermissionsForRole(out.Role)
	if err != nil {
		uc.logger.Warnw("failed to list role permissions", "error", err, "role", out.Role)
		return out, nil
	}
	out.Permissions = perms
	return out, nil
}
