package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
)

// Timeouts
const (
	DefaultTimeout        = 10 * time.Second
	DefaultRequestTimeout = 15 * time.Second
	ShutdownTimeout       = 10 * time.Second
)

// Background worker settings
const (
	WorkerConcurrency = 10
)

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "token:blacklist:"
	RedisKeyScheduleStats  = "scheduler:stats:"
	RedisKeyLoginAttempt   = "login:attempt:"
)

// Login throttling
const (
	MaxLoginAttempts   = 5
	LoginBlockDuration = 15 * time.Minute
)

// Cache TTLs
const (
	ScheduleStatsCacheTTL = 5 * time.Minute
)

// Scheduling defaults
const (
	DefaultInterviewDuration  = 60 // minutes
	DefaultBufferTime         = 15 // minutes
	DefaultBusinessHoursStart = 9
	DefaultBusinessHoursEnd   = 17
	DefaultMaxSuggestions     = 5
)
