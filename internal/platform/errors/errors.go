package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrNotInstalled   = errors.New("application not installed")
	ErrNoLaunchTarget = errors.New("no launch target")
	ErrUnavailable    = errors.New("metric unavailable")
)
