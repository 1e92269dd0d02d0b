package ragflow

import "fmt"

// APIError is an application-level failure reported inside a 2xx response
// through the {code, message} envelope.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ragflow error %d: %s", e.Code, e.Message)
}
