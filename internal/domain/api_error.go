package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundMessage is shown for any 404 response
const NotFoundMessage = "The requested resource was not found."

// APIError is a non-2xx response from the platform API
type APIError struct {
	StatusCode int
	Message    string
	Method     string
	Path       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// ParseError turns any error into a single display string.
// 404 maps to NotFoundMessage, 400 surfaces the server message, client-side
// validation errors keep their own text and everything else uses fallback.
func ParseError(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusNotFound:
			return NotFoundMessage
		case apiErr.StatusCode == http.StatusBadRequest && apiErr.Message != "":
			return apiErr.Message
		default:
			return fallback
		}
	}

	if IsClientError(err) {
		return err.Error()
	}

	return fallback
}

// IsClientError reports whether err was raised before any request was sent
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrActionNotAllowed) ||
		errors.Is(err, ErrNoActiveOrganization) ||
		errors.Is(err, ErrOptionNotFound) ||
		errors.Is(err, ErrNotOpenForVoting) ||
		errors.Is(err, ErrCancelled) ||
		errors.Is(err, ErrNonInteractive)
}
