package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrAssistantUnavailable = errors.New("assistant not configured")
)
