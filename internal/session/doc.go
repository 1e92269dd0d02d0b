// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session provides the retry-configured HTTP session shared by the
// ragkit service clients.
//
// A session wraps a resty.Client with a base URL, a request timeout, an
// optional bearer credential, and a uniform retry policy: responses with a
// status in {429, 500, 502, 503, 504} and plain transport failures are
// retried up to the configured count, waiting backoff * 2^(attempt-1)
// between attempts. The retry decision itself is the pure predicate
// [ShouldRetry] over (method, status).
//
// Non-2xx responses are mapped by [MapHTTPError] to sentinel errors wrapping
// a [*StatusError], so callers can discriminate with errors.Is and recover
// the status code and any server-supplied error code/message pair with
// errors.As.
package session
