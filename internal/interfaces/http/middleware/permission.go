package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaintdesk/internal/domain/permission"
	"complaintdesk/internal/shared/constants"
	"complaintdesk/internal/shared/logger"
	"complaintdesk/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission gates a route on the caller's role. It must run after
// RequireAuth.
func (m *PermissionMiddleware) RequirePermission(resource permission.Resource, action permission.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(constants.ContextKeyUserID)
		if userID == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		role := c.GetString(constants.ContextKeyUserRole)
		allowed, err := m.enforcer.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", userID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", userID, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
