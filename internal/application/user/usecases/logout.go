package usecases

import (
	"context"

	"complaintdesk/internal/shared/logger"
)

type LogoutUseCase struct {
	sessions *SessionManager
	logger   logger.Interface
}

func NewLogoutUseCase(sessions *SessionManager, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context) error {
	prev := uc.sessions.Current()
	uc.sessions.SignOut(ctx)

	if prev != nil {
		uc.logger.Infow("user logged out", "user_id", prev.ID())
	}
	return nil
}
