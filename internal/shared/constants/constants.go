package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Pagination
	DefaultPage = 1
	MaxPageSize = 100

	// HTTP Headers
	HeaderXRequestID = "X-Request-ID"

	// Context keys set by the session middleware
	ContextKeyUserID    = "user_id"
	ContextKeyUserName  = "user_name"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
