package utils

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCityName        = errors.New("city name is empty")
	ErrWeatherNotConfigured = errors.New("weather provider is not configured")
)

// ValidationError carries the user-facing message for a rejected guide request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CityNotFoundError is returned when no spelling variant of a city is accepted
// by the weather provider. City holds the original localized name, never a
// romanized variant.
type CityNotFoundError struct {
	City string
}

func (e *CityNotFoundError) Error() string {
	return fmt.Sprintf("no forecast available for city %q", e.City)
}
