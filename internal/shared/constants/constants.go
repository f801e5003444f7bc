package constants

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)
