package utils

import (
	"strconv"
	"strings"
)

const (
	MinTripDays = 1
	MaxTripDays = 14
)

// ParseTripDays turns the raw duration field into a day count. Anything
// unparseable or non-positive falls back to a one-day trip; values above
// the cap are clamped so the itinerary prompt stays bounded.
func ParseTripDays(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < MinTripDays {
		return MinTripDays
	}
	if n > MaxTripDays {
		return MaxTripDays
	}
	return n
}

// ValidTripDuration reports whether a non-empty duration field is an
// integer inside the accepted range. Empty input is valid: the day count
// defaults later.
func ValidTripDuration(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return true
	}
	n, err := strconv.Atoi(trimmed)
	return err == nil && n >= MinTripDays && n <= MaxTripDays
}
