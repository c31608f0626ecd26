package models

import "errors"

var (
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrUnknownFieldMode  = errors.New("unknown identifier field mode")
)
