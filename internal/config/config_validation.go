// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before a client is constructed from it.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.MinRUE.Endpoint.validate(); err != nil {
		return fmt.Errorf("minrue: %w", err)
	}
	if err := cfg.RAGFlow.Endpoint.validate(); err != nil {
		return fmt.Errorf("ragflow: %w", err)
	}

	return nil
}

func (e Endpoint) validate() error {
	if e.BaseURL == "" || e.RequestTimeout <= 0 {
		return ErrInvalidEndpointConfig
	}
	if e.RetryCount < 0 || e.RetryBackoff <= 0 {
		return ErrInvalidRetryConfig
	}

	return nil
}

// Validate checks the settings that only the RAG service client requires.
// The merged config is valid without an API key (the minrue binary never
// needs one), so this check runs at the point where a RAG client is built.
func (r RAGFlow) Validate() error {
	if r.APIKey == "" {
		return ErrMissingAPIKey
	}

	return nil
}
