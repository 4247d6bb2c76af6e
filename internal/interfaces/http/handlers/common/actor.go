// Package common provides shared HTTP handler utilities.
package common

import (
	"github.com/gin-gonic/gin"

	"complaintdesk/internal/shared/constants"
	"complaintdesk/internal/shared/errors"
)

// Actor is the signed-in identity the session middleware placed on the
// request context.
type Actor struct {
	ID   string
	Name string
	Role string
}

// CurrentActor reads the identity set by the session middleware.
func CurrentActor(c *gin.Context) (Actor, error) {
	id := c.GetString(constants.ContextKeyUserID)
	if id == "" {
		return Actor{}, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}
	return Actor{
		ID:   id,
		Name: c.GetString(constants.ContextKeyUserName),
		Role: c.GetString(constants.ContextKeyUserRole),
	}, nil
}
