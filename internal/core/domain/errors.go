package domain

import (
	"errors"
	"fmt"
)

var ErrSessionExpired = errors.New("session expired")
var ErrNoRefreshToken = errors.New("no refresh token stored")
var ErrInvalidPayload = errors.New("invalid request payload")

// APIError is the structured form of a non-success API response. The status
// code is carried as a number so callers can switch on it instead of matching
// substrings of the message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// NewAPIError builds an APIError from a status code and the server's error
// message. An empty message falls back to the generic status string.
func NewAPIError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("HTTP error! status: %d", status)
	}
	return &APIError{StatusCode: status, Message: message}
}

// PresentError translates an error into a message fit for display. 401s are
// not translated here: callers are expected to have torn the session down and
// redirected before presentation.
func PresentError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 403:
			return "Access denied. You do not have permission to perform this action."
		case 404:
			return "Resource not found."
		case 500:
			return "Server error. Please try again later."
		}
		return apiErr.Message
	}
	if err == nil || err.Error() == "" {
		return "An unexpected error occurred."
	}
	return err.Error()
}
