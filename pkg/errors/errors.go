// Package errors defines the error taxonomy of the client: validation
// failures raised before any network call, transport failures carrying the
// remote status, and authentication-level sentinels. Read accessors signal
// not-found with a nil result instead of an error.
package errors

import "fmt"

// ValidationError reports malformed caller input. It is always returned
// before a request is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// TransportError reports a failed exchange with a remote service: a network
// or timeout failure (StatusCode zero) or a non-2xx response. Body carries
// the remote message verbatim.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("transport: %v", e.Err)
	}
	return fmt.Sprintf("transport: HTTP %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	_, ok := err.(*TransportError)
	return ok
}

// Authentication-level sentinels.
var (
	ErrL1AuthUnavailable = NewValidationError("Level 1 Authentication Unavailable")
	ErrL2AuthUnavailable = NewValidationError("Level 2 Authentication Unavailable")
)

// NewInvalidTickSizeError reports a tick size below the market minimum.
func NewInvalidTickSizeError(tickSize, minTickSize string) error {
	return NewValidationError("invalid tick size (%s), minimum for the market is %s", tickSize, minTickSize)
}

// NewInvalidPriceError reports a price outside the tick grid.
func NewInvalidPriceError(price float64, minTickSize, maxPrice string) error {
	return NewValidationError("price (%f), min: %s - max: %s", price, minTickSize, maxPrice)
}
