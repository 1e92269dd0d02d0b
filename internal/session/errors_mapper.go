package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// MapHTTPError converts a non-2xx response into an error.
//
// The returned error wraps both the status sentinel for the response code
// (e.g. [ErrNotFound] for 404) and a [*StatusError] carrying the code and
// any server-supplied {code, message} pair parsed from the body. 2xx
// responses map to nil.
func MapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	statusErr := &StatusError{Status: resp.StatusCode()}

	var envelope struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
		statusErr.Code = envelope.Code
		statusErr.Message = envelope.Message
	} else {
		statusErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if statusErr.Message == "" {
		statusErr.Message = http.StatusText(statusErr.Status)
	}

	if sentinel := sentinelFor(statusErr.Status); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, statusErr)
	}

	return statusErr
}

func sentinelFor(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	case http.StatusGatewayTimeout:
		return ErrGatewayTimeout
	default:
		return nil
	}
}
