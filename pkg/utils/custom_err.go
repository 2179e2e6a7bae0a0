package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrSessionNotFound    = errors.New("session not found")
	ErrGenerationInFlight = errors.New("generation already in flight")
	ErrGuideNotReady      = errors.New("guide not ready")
	ErrGuideGeneration    = errors.New("guide generation failed")
	ErrUnknownTab         = errors.New("unknown tab")
	ErrUnknownMapStyle    = errors.New("unknown map style")
)
