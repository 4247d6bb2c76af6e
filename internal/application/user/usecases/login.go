package usecases

import (
	"context"
	"errors"

	"complaintdesk/internal/application/user/dto"
	"complaintdesk/internal/domain/user"
	apperrors "complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Authenticated bool
	User          *dto.UserDTO
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LoginUseCase struct {
	directory user.Directory
	sessions  *SessionManager
	hasher    user.PasswordHasher
	mode      AuthMode
	logger    logger.Interface
}

func NewLoginUseCase(
	directory user.Directory,
	sessions *SessionManager,
	hasher user.PasswordHasher,
	mode AuthMode,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		directory: directory,
		sessions:  sessions,
		hasher:    hasher,
		mode:      mode,
		logger:    logger,
	}
}

// Execute signs in the identity matching cmd.Email. A failed match returns
// Authenticated=false with a nil error and leaves the current session as it
// was.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.directory.GetByEmail(ctx, cmd.Email)
	if errors.Is(err, user.ErrUserNotFound) {
		uc.logger.Infow("login rejected: unknown email")
		return &LoginResult{}, nil
	}
	if err != nil {
		uc.logger.Errorw("failed to look up user by email", "error", err)
		return nil, apperrors.NewInternalError("failed to look up user")
	}

	if uc.mode == AuthModeStrict {
		if !u.HasPassword() || uc.hasher == nil || !uc.hasher.Verify(u.PasswordHash(), cmd.Password) {
			uc.logger.Infow("login rejected: bad credentials", "user_id", u.ID())
			return &LoginResult{}, nil
		}
	}

	uc.sessions.SignIn(ctx, u)
	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role(), "mode", uc.mode)

	return &LoginResult{Authenticated: true, User: dto.ToUserDTO(u)}, nil
}
