package constants

// Pagination
const (
	MinPage         = 1
	MaxPage         = 1_000_000
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Context keys
const (
	ContextKeyRequestID  = "request_id"
	ContextKeyResourceID = "resource_id"
)

// Headers
const (
	HeaderRequestID = "X-Request-ID"
)

// Field limits
const (
	MaxTaskNameLength = 255
	MaxMobileLength   = 15
	MinPasswordLength = 8
)
