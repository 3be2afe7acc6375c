package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySession contextKey = "session"
	ContextKeyTokenID contextKey = "token_id"
)

// Status codes shared by every lookup table. The meaning of each code is per entity.
const (
	AgentStatusActive   int64 = 1
	AgentStatusInactive int64 = 2

	CustomerStatusActive   int64 = 1
	CustomerStatusInactive int64 = 2

	EquipmentStatusRented    int64 = 1
	EquipmentStatusAvailable int64 = 2

	RentalStatusActive int64 = 1
	RentalStatusClosed int64 = 2

	VehicleStatusActive   int64 = 1
	VehicleStatusInactive int64 = 2
)

const (
	StatusNameActive   = "Active"
	StatusNameInactive = "Inactive"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID         = "id"
	RequestParamCustomerID = "customer_id"
	RequestParamStatus     = "status"
	RequestParamUsername   = "username"
	RequestParamPassword   = "password"
	RequestParamFlash      = "flash"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortDir = "DESC"
)

const (
	FieldUpdatedByAgentID = "updated_by_agent_id"
	FieldStatusID         = "status_id"
)

// Postgres error codes used to classify persistence failures.
const (
	PqErrorCodeNotNullViolation = "23502"
	PqErrorCodeFkViolation      = "23503"
	PqErrorCodeUniqueViolation  = "23505"
	PqErrorCodeCheckViolation   = "23514"
	PqErrorClassDataException   = "22"
	PqErrorClassConnection      = "08"
)

const (
	DateFormat       = "2006-01-02"
	TimeFormat       = "15:04"
	TimeFormatSecond = "15:04:05"
	TimestampFormat  = time.RFC3339
)

const (
	MinutesToSeconds = 60
)

const (
	CacheKeyPrefix    = "rentdesk"
	CacheKeySeparator = ":"
	CacheKeyListing   = "listing"
	CacheKeyLookup    = "lookup"
	CacheKeyRateLimit = "limiter"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorInternal             = "internal server error"
)

const (
	RouteLogin   = "/login"
	RouteLogout  = "/logout"
	RouteDisplay = "/display"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
