package session

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/ragkit/internal/logger"
)

// Config holds the parameters of one retry-configured session. It is
// immutable after the session is constructed; a client that needs a
// different target builds a new session.
type Config struct {
	// BaseURL is the root URL of the remote API, scheme optional
	// (plain "host:port" defaults to http).
	BaseURL string
	// RequestTimeout bounds every single request attempt.
	RequestTimeout time.Duration
	// RetryCount is the number of retries on top of the initial attempt.
	RetryCount int
	// RetryBackoff is the base backoff factor; the wait before retry n is
	// RetryBackoff * 2^(n-1). No jitter is applied.
	RetryBackoff time.Duration
	// APIKey, when non-empty, is sent as "Authorization: Bearer <APIKey>"
	// on every request.
	APIKey string
}

// Client is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly, while
// fixing the retry policy and base URL at construction time.
type Client struct {
	*resty.Client
}

// New constructs a retry-configured session from cfg.
//
// The base URL is normalised and validated first. The resulting client
// retries a request when the attempt failed at the transport level or the
// response status satisfies [ShouldRetry], waiting
// cfg.RetryBackoff * 2^(attempt-1) between attempts.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func New(cfg Config, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	maxBackoff := cfg.RetryBackoff
	if cfg.RetryCount > 1 {
		maxBackoff = cfg.RetryBackoff * (1 << uint(cfg.RetryCount-1))
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryBackoff).
		SetRetryMaxWaitTime(maxBackoff).
		SetRetryAfter(func(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
			return cfg.RetryBackoff * (1 << uint(resp.Request.Attempt-1)), nil
		}).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true // transport failure
			}
			return ShouldRetry(resp.Request.Method, resp.StatusCode())
		}).
		AddRetryHook(func(resp *resty.Response, err error) {
			event := log.Debug().Err(err)
			if resp != nil {
				event = event.
					Str("method", resp.Request.Method).
					Str("url", resp.Request.URL).
					Int("status", resp.StatusCode()).
					Int("attempt", resp.Request.Attempt)
			}
			event.Msg("retrying request")
		})

	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &Client{Client: client}, nil
}

// retryStatuses is the fixed set of retry-eligible response codes.
var retryStatuses = map[int]struct{}{
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

// retryMethods is the standard HTTP method set eligible for retries.
var retryMethods = map[string]struct{}{
	http.MethodHead:    {},
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodDelete:  {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

// ShouldRetry reports whether a request with the given method that received
// the given response status is eligible for a retry. It is a pure function
// of its arguments.
func ShouldRetry(method string, status int) bool {
	if _, ok := retryMethods[strings.ToUpper(method)]; !ok {
		return false
	}
	_, ok := retryStatuses[status]
	return ok
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
