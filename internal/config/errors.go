package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidEndpointConfig indicates a missing base URL or a
	// non-positive request timeout for a service endpoint.
	ErrInvalidEndpointConfig = errors.New("invalid endpoint configuration")
	// ErrInvalidRetryConfig indicates a negative retry count or a
	// non-positive retry backoff factor.
	ErrInvalidRetryConfig = errors.New("invalid retry configuration")
	// ErrMissingAPIKey indicates that the RAG service API key is absent.
	ErrMissingAPIKey = errors.New("missing RAGFlow API key")
)
