package constants

import "time"

const (
	// DefaultHTTPTimeout bounds a single fetch including redirects.
	DefaultHTTPTimeout = 10 * time.Second
	// DefaultMaxBodyBytes caps how much of a response body is read and parsed.
	DefaultMaxBodyBytes int64 = 10 << 20
	// MaxRedirects mirrors the net/http default redirect policy.
	MaxRedirects = 10
)

const (
	// AppName is used for the binary name, config file and the default User-Agent.
	AppName = "urlscan"
	// EnvPrefix scopes environment overrides (URLSCAN_DEFAULTS_TIMEOUT_SECS, ...).
	EnvPrefix = "URLSCAN"
)
