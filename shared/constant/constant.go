package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamCode   = "code"
	RequestParamAction = "action"
	RequestParamDate   = "date"
	RequestMaxMemory   = 10 << 20 // 10 MB
)

const (
	ActionGetBookedSlots = "getBookedSlots"
)

const (
	DayFormat = "2006-01-02"
)

const (
	StoreDriverMemory = "memory"
)

const (
	LockDriverMemory = "memory"
)

const (
	NotifierDriverKafka = "kafka"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"
	OtelJobScopeName        = "job"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
	ResponseHeaderRetryAfter        = "Retry-After"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeCSV               = "text/csv"
	ContentTypeMultipartFormData = "multipart/form-data"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
