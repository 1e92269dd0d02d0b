package minrue

import "errors"

// ErrPollTimeout is returned by WaitForResult when a job fails to reach a
// terminal status within the maximum wait duration. It is distinct from any
// transport or HTTP error so callers can tell "the job is still running"
// apart from "the service failed".
var ErrPollTimeout = errors.New("result retrieval timed out")
