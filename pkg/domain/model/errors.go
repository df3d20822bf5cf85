package model

import "github.com/m-mizutani/goerr/v2"

// Error taxonomy. The HTTP layer maps tags to status codes; background
// tasks map them to user-facing chat messages.
var (
	ErrTagAuthFailure          = goerr.NewTag("auth_failure")
	ErrTagBadRequest           = goerr.NewTag("bad_request")
	ErrTagConfigurationMissing = goerr.NewTag("configuration_missing")
	ErrTagUpstream             = goerr.NewTag("upstream_error")
	ErrTagInvalidDuration      = goerr.NewTag("invalid_duration")
	ErrTagUserNotFound         = goerr.NewTag("user_not_found")
)

// Sentinel errors for domain operations
var (
	ErrInvalidDurationFormat = goerr.New("invalid duration format, use 30m, 2h or 1d")
	ErrNonPositiveDuration   = goerr.New("duration must be a positive number")
	ErrDurationTooLong       = goerr.New("duration exceeds the allowed maximum")
	ErrUnknownInteraction    = goerr.New("unhandled interaction type")
)
