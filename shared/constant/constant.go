package constant

import (
	"time"
)

// Context key types to avoid collisions
type ContextKey string

const (
	ContextKeyUserID    ContextKey = "user_id"
	ContextKeyUserEmail ContextKey = "user_email"
	ContextKeyUserName  ContextKey = "user_name"
	ContextKeyUserRole  ContextKey = "user_role"
	ContextKeyUserRoles ContextKey = "user_roles"
	ContextKeyTokenID   ContextKey = "token_id"
	ContextKeyToken     ContextKey = "token"
	ContextKeySessionID ContextKey = "session_id"
	ContextKeyRequestID ContextKey = "request_id"
)

const (
	RoleAdmin  = "ADMIN"
	RoleWorker = "TRABAJADOR"
)

const (
	RequestParamID        = "id"
	RequestParamSearch    = "search"
	RequestParamRefresh   = "refresh"
	RequestParamConfirm   = "confirm"
	RequestParamActive    = "active"
	RequestParamLimit     = "limit"
	RequestParamPage      = "page"
	RequestParamSortBy    = "sort_by"
	RequestParamSortDir   = "sort_dir"
	RequestParamEntity    = "entity"
	RequestParamAction    = "action"
	RequestParamUser      = "user"
	RequestParamStartDate = "start_date"
	RequestParamEndDate   = "end_date"
	RequestParamStatus    = "status"
	RequestMaxMemory      = 10 << 20 // 10 MB
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 50
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
)

const (
	MinutesToSeconds = 60
	HoursInDay       = 24
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderAccept             = "Accept"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderSessionID          = "X-Session-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"
	ContentTypeXLSX              = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	FormFile                     = "file"
	FormImage                    = "image"
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
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

const (
	Asterix = "*"
	Empty   = ""
)
