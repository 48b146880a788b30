// Package core provides core types and error definitions
package core

import "errors"

var (
	// ErrNoInput is returned when no domain input is specified
	ErrNoInput = errors.New("input domain list is required")

	// ErrTooManyWorkers is returned when worker count exceeds limits
	ErrTooManyWorkers = errors.New("worker count exceeds maximum (1000)")

	// ErrInvalidConfig is returned when configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidProxy is returned when the proxy URL cannot be used
	ErrInvalidProxy = errors.New("invalid proxy URL")
)
