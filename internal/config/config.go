// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the ragkit
// clients. It aggregates per-service endpoint settings and is populated by
// merging values from command-line overrides, environment variables, an
// optional JSON file, and built-in defaults (in that priority order).
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// MinRUE holds endpoint settings for the document-processing service.
	MinRUE MinRUE `envPrefix:"MINRUE_"`

	// RAGFlow holds endpoint settings and the API key for the RAG service.
	RAGFlow RAGFlow `envPrefix:"RAGFLOW_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from overrides and environment variables.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Endpoint holds the connection settings shared by every remote service
// client: where to reach the service and how the outbound session behaves.
type Endpoint struct {
	// BaseURL is the root URL of the remote API, including the version
	// prefix (e.g. "http://localhost:8000/v1").
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request, including retries of that request (e.g. "30s", "1m").
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of retry attempts for transient failures
	// (429/5xx responses and transport errors) on top of the initial try.
	RetryCount int `env:"RETRY_COUNT"`

	// RetryBackoff is the base backoff factor; the wait before retry n is
	// RetryBackoff * 2^(n-1).
	RetryBackoff time.Duration `env:"RETRY_BACKOFF"`
}

// MinRUE groups settings for the document-processing service client.
// Env: MINRUE_BASE_URL, MINRUE_REQUEST_TIMEOUT, MINRUE_RETRY_COUNT,
// MINRUE_RETRY_BACKOFF.
type MinRUE struct {
	Endpoint
}

// RAGFlow groups settings for the RAG service client.
// Env: RAGFLOW_BASE_URL, RAGFLOW_REQUEST_TIMEOUT, RAGFLOW_RETRY_COUNT,
// RAGFLOW_RETRY_BACKOFF, RAGFLOW_API_KEY.
type RAGFlow struct {
	Endpoint

	// APIKey is the bearer credential attached to every RAG service
	// request. It is an opaque pass-through string; the client never
	// inspects it.
	APIKey string `env:"API_KEY"`
}

// defaults returns the built-in configuration used as the lowest-priority
// merge layer.
func defaults() *StructuredConfig {
	endpoint := Endpoint{
		BaseURL:        "http://localhost:8000/v1",
		RequestTimeout: 30 * time.Second,
		RetryCount:     3,
		RetryBackoff:   time.Second,
	}

	return &StructuredConfig{
		MinRUE:  MinRUE{Endpoint: endpoint},
		RAGFlow: RAGFlow{Endpoint: endpoint},
	}
}

// GetConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (earlier sources win for
// non-zero fields):
//  1. Command-line overrides (flag values bound by the CLI layer)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// overrides may be nil when the caller has no flag layer.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
