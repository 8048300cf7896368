package joke

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred while fetching a joke
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error (connection reset, body read failure, etc.)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request did not complete within the client timeout
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the endpoint refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates the endpoint hostname could not be resolved
	ErrTypeDNS
	// ErrTypeHTTP indicates a response was received with a non-2xx status code
	ErrTypeHTTP
	// ErrTypeParse indicates the response body was not a valid joke JSON object
	ErrTypeParse
	// ErrTypeMissingField indicates the JSON lacked "setup" or "punchline"
	ErrTypeMissingField
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeMissingField:
		return "Missing Field"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by every failing Client operation.
type Error struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (ErrTypeHTTP only)
	Field      string    // Missing JSON key (ErrTypeMissingField only)
	Body       string    // Start of the response body (ErrTypeHTTP only)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError maps a transport error from net/http onto an Error.
// The *url.Error returned by http.Client is walked with errors.As, so callers
// pass it through unchanged. Returns nil for a nil err.
func ClassifyNetworkError(err error) *Error {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) {
		return &Error{Type: ErrTypeTimeout, Message: "request timed out", Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		// Timeouts during lookup were caught above
		return &Error{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &Error{Type: ErrTypeConnectionRefused, Message: "endpoint refused connection", Err: err}
	}

	return &Error{Type: ErrTypeNetwork, Message: "request failed", Err: err}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, err error) *Error {
	classified := ClassifyNetworkError(err)
	if classified == nil {
		return &Error{Type: ErrTypeNetwork, Message: message}
	}
	if classified.Type == ErrTypeNetwork {
		classified.Message = message
	}
	return classified
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, message string) *Error {
	return &Error{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *Error {
	return &Error{
		Type:    ErrTypeParse,
		Message: message,
		Err:     err,
	}
}

// NewMissingFieldError creates an error for a required key absent from the response
func NewMissingFieldError(field string) *Error {
	return &Error{
		Type:    ErrTypeMissingField,
		Message: fmt.Sprintf("response is missing required field %q", field),
		Field:   field,
	}
}

func errorType(err error) (ErrorType, bool) {
	var jokeErr *Error
	if errors.As(err, &jokeErr) {
		return jokeErr.Type, true
	}
	return 0, false
}

// IsNetworkError checks if an error is a network error (including timeout, connection refused and DNS)
func IsNetworkError(err error) bool {
	t, ok := errorType(err)
	if !ok {
		return false
	}
	return t == ErrTypeNetwork ||
		t == ErrTypeTimeout ||
		t == ErrTypeConnectionRefused ||
		t == ErrTypeDNS
}

// IsTimeout checks if an error is a request timeout
func IsTimeout(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeTimeout
}

// IsHTTPError checks if an error is an HTTP status error
func IsHTTPError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeHTTP
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeParse
}

// IsMissingFieldError checks if an error is a missing field error
func IsMissingFieldError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeMissingField
}
