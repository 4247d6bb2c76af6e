package usecases

import (
	"context"
	"errors"
	"sync"

	"complaintdesk/internal/application/user/dto"
	"complaintdesk/internal/domain/user"
	"complaintdesk/internal/shared/biztime"
	apperrors "complaintdesk/internal/shared/errors"
	"complaintdesk/internal/shared/id"
	"complaintdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Name         string
	Email        string
	Password     string
	Role         string
	PolicyNumber string
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error)
}

type RegisterUseCase struct {
	directory user.Directory
	sessions  *SessionManager
	hasher    user.PasswordHasher
	ids       id.Generator
	mode      AuthMode
	logger    logger.Interface

	// mu serializes the strict-mode email check with the insert.
	mu sync.Mutex
}

func NewRegisterUseCase(
	directory user.Directory,
	sessions *SessionManager,
	hasher user.PasswordHasher,
	ids id.Generator,
	mode AuthMode,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		directory: directory,
		sessions:  sessions,
		hasher:    hasher,
		ids:       ids,
		mode:      mode,
		logger:    logger,
	}
}

// Execute adds a new identity and signs it in. In demo mode an email that is
// already registered is accepted and the earlier identity keeps winning
// email lookups.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing register use case", "role", cmd.Role, "mode", uc.mode)

	role, err := user.NewRole(cmd.Role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	hash := ""
	if uc.mode == AuthModeStrict {
		uc.mu.Lock()
		defer uc.mu.Unlock()

		if cmd.Password == "" {
			return nil, apperrors.NewValidationError("password is required")
		}

		_, err := uc.directory.GetByEmail(ctx, cmd.Email)
		switch {
		case err == nil:
			uc.logger.Warnw("registration rejected: email taken")
			return nil, apperrors.NewConflictError(user.ErrEmailTaken.Error())
		case !errors.Is(err, user.ErrUserNotFound):
			uc.logger.Errorw("failed to check email", "error", err)
			return nil, apperrors.NewInternalError("failed to register user")
		}

		hash, err = uc.hasher.Hash(cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, apperrors.NewInternalError("failed to register user")
		}
	}

	u, err := user.NewUser(
		uc.ids.New(id.PrefixUser),
		cmd.Name,
		cmd.Email,
		role,
		cmd.PolicyNumber,
		hash,
		biztime.NowUTC(),
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.directory.Add(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, apperrors.NewConflictError(err.Error())
		}
		uc.logger.Errorw("failed to add user", "error", err)
		return nil, apperrors.NewInternalError("failed to register user")
	}

	uc.sessions.SignIn(ctx, u)
	uc.logger.Infow("user registered", "user_id", u.ID(), "role", u.Role())

	return dto.ToUserDTO(u), nil
}
