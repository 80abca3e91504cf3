package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID contextKey = "user_id"
)

// DefaultOwner owns every saved timezone until the API gains real users.
const DefaultOwner = "default"

const (
	TargetTimezoneID = "Asia/Kolkata"
	TargetOffset     = "+05:30"
	ZeroOffset       = "+00:00"
	UnknownRegion    = "Unknown"
)

const (
	TimeLayout = "15:04:05"
	DateLayout = "Mon, Jan 02, 2006"
)

const (
	SavedTimezonesLimit = 100
)

const (
	RequestParamTimezoneID  = "timezone_id"
	RequestParamTimezoneIDs = "timezone_ids"
	RequestParamSeparator   = ","
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseMessageRoot               = "Timezone Converter API"
	ResponseMessageTimezoneRemoved    = "Timezone removed from saved list"
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseMessageHealthy            = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	MetricsNamespace = "tzconv"
)
