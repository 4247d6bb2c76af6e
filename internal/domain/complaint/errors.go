package complaint

import "errors"

var (
	ErrComplaintNotFound    = errors.New("complaint not found")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrDuplicateCode        = errors.New("complaint code already exists")
)
