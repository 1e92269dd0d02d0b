package models

// Job statuses reported by the document-processing service. The value set is
// dictated by the remote service.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// HealthStatus is the response of GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Version string `json:"version,omitempty"`
}

// ModelList is the response of GET /models.
type ModelList struct {
	Models []string `json:"models"`
}

// TaskList is the response of GET /tasks.
type TaskList struct {
	Tasks []string `json:"tasks"`
}

// Job is the response of POST /process. JobID is an opaque identifier used
// as an external key into the service's job store; no local state is tracked
// for it.
type Job struct {
	JobID  string `json:"job_id"`
	Status string `json:"status,omitempty"`
}

// ProcessParameters are the optional generation parameters attached to a
// processing request. They are JSON-encoded into the "parameters" form field
// of the multipart upload. Nil fields are omitted entirely so the service
// applies its own defaults.
type ProcessParameters struct {
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
}

// Result is the response of GET /results/{job_id}.
//
// For a terminal record exactly one of Output and Error is populated:
// Output for StatusCompleted, Error for StatusFailed.
type Result struct {
	Status string `json:"status"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Terminal reports whether the result has reached a status after which no
// further state change occurs.
func (r Result) Terminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusFailed
}
