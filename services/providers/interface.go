package providers

import (
	"context"
	"errors"
	"time"
)

// VoiceLister is the outbound surface the rest of the application sees.
// The concrete ElevenLabs client implements it; tests substitute mocks.
type VoiceLister interface {
	// Name returns the provider name (e.g., "elevenlabs")
	Name() string

	// FetchVoices retrieves the provider's voice catalog as a compact
	// JSON payload. Failures come back as *ProviderError.
	FetchVoices(ctx context.Context) ([]byte, error)
}

// ErrorKind classifies provider failures. The three kinds are mutually
// exclusive and terminal; nothing is retried.
type ErrorKind string

const (
	// KindStatus means the provider answered with a non-success HTTP status.
	KindStatus ErrorKind = "status"

	// KindTransport covers failures before a response was obtained
	// (DNS, connection refused, TLS, timeout).
	KindTransport ErrorKind = "transport"

	// KindUnexpected covers everything else, e.g. a success status with
	// a body that is not valid JSON.
	KindUnexpected ErrorKind = "unexpected"
)

// ProviderConfig holds common configuration for providers
type ProviderConfig struct {
	// APIKey for authentication
	APIKey string

	// BaseURL for the API (optional override)
	BaseURL string

	// Timeout for requests
	Timeout time.Duration
}

// ProviderError represents an error from a provider
type ProviderError struct {
	// Provider that generated the error
	Provider string

	// Kind classifies the failure
	Kind ErrorKind

	// Message is the failure detail: the raw response body for KindStatus,
	// the stringified cause otherwise
	Message string

	// StatusCode is the HTTP status code (KindStatus only)
	StatusCode int

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap implements error unwrapping
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a new provider error
func NewProviderError(provider string, kind ErrorKind, message string, statusCode int, cause error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		Kind:       kind,
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// KindOf returns the error's kind, defaulting to KindUnexpected for
// anything that is not a ProviderError.
func KindOf(err error) ErrorKind {
	var provErr *ProviderError
	if errors.As(err, &provErr) {
		return provErr.Kind
	}
	return KindUnexpected
}
