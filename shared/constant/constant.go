package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamQuery   = "q"
	RequestParamID      = "id"
	RequestParamCode    = "code"
	RequestParamOffset  = "o"
	RequestParamZone    = "zone"
	RequestParamTime    = "time"
	RequestParamMinutes = "minutes"
	RequestParamStart   = "start"
	RequestParamEnd     = "end"
)

const (
	DateFormat     = time.RFC3339
	DayFormat      = "2006-01-02"
	WallTimeFormat = "2006-01-02T15:04:05"
)

const (
	OtelServiceScopeName = "service"
	OtelHandlerScopeName = "handler"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON = "application/json"
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
