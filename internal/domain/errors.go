package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired means the server rejected our session credentials.
	// Fatal to the current session: the shell must discard local state and
	// re-resolve from scratch.
	ErrSessionExpired = errors.New("session expired")

	// ErrInsufficientCredits (HTTP 402): recoverable, the user must top up.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrRateLimited (HTTP 429): recoverable, the user must wait and
	// resubmit manually. No automatic backoff.
	ErrRateLimited = errors.New("rate limited")

	ErrEmptyInput = errors.New("input is empty")
	ErrBusy       = errors.New("a request is already in progress")
)

// GenericFailureMessage is shown when the server gave no error message.
const GenericFailureMessage = "request failed"

// APIError is a non-2xx response outside the fatal/quota/rate taxonomy.
// Panels recover from it locally.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// FailureMessage extracts the user-facing text for err, preferring the
// server-provided message and falling back to a generic one.
func FailureMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	switch {
	case errors.Is(err, ErrInsufficientCredits):
		return "Insufficient credits. Please add more credits to continue."
	case errors.Is(err, ErrRateLimited):
		return "Rate limit exceeded. Please wait a moment before trying again."
	case err != nil:
		return GenericFailureMessage
	}
	return ""
}
