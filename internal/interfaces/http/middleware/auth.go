package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaintdesk/internal/domain/user"
	"complaintdesk/internal/shared/constants"
	"complaintdesk/internal/shared/utils"
)

// SessionSource exposes the identity currently signed in to the desk.
type SessionSource interface {
	Current() *user.User
}

type AuthMiddleware struct {
	sessions SessionSource
}

func NewAuthMiddleware(sessions SessionSource) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireAuth places the current session identity on the request context and
// answers 401 when nobody is signed in.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := m.sessions.Current()
		if u == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, u.ID())
		c.Set(constants.ContextKeyUserName, u.Name())
		c.Set(constants.ContextKeyUserRole, u.Role().String())

		c.Next()
	}
}
