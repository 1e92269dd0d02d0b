package minrue

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/ragkit/internal/logger"
	"github.com/MKhiriev/ragkit/internal/session"
	"github.com/MKhiriev/ragkit/models"
)

// Defaults applied when a processing request or wait loop leaves a value
// unset. The model and task defaults mirror the service's own.
const (
	DefaultModel = "mistral-7b-instruct"
	DefaultTask  = "text-refinement"

	DefaultWaitTimeout  = 60 * time.Second
	DefaultPollInterval = 5 * time.Second
)

// ProcessOptions carries the optional knobs of a processing request.
type ProcessOptions struct {
	// Model selects the model; empty means [DefaultModel].
	Model string
	// Task selects the task type; empty means [DefaultTask].
	Task string
	// Parameters are forwarded to the service JSON-encoded; nil fields are
	// omitted so the service applies its own defaults.
	Parameters models.ProcessParameters
}

// Client implements [Service] over HTTP.
type Client struct {
	http *session.Client
	log  *logger.Logger
}

var _ Service = (*Client)(nil)

// New constructs a document-processing client from the given session
// configuration. Returns an error if the base URL is invalid.
func New(cfg session.Config, log *logger.Logger) (*Client, error) {
	httpClient, err := session.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create minrue session: %w", err)
	}

	return &Client{http: httpClient, log: log}, nil
}

// Health implements [Service]. It GETs /health and returns the decoded
// health record.
func (c *Client) Health(ctx context.Context) (models.HealthStatus, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w: %w", session.ErrTransport, err)
	}
	if err = session.MapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	var health models.HealthStatus
	if err = json.Unmarshal(resp.Body(), &health); err != nil {
		return models.HealthStatus{}, fmt.Errorf("decode health response: %w: %w", session.ErrDecode, err)
	}

	return health, nil
}

// ListModels implements [Service]. It GETs /models and returns the decoded
// model list.
func (c *Client) ListModels(ctx context.Context) (models.ModelList, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/models")
	if err != nil {
		return models.ModelList{}, fmt.Errorf("list models request: %w: %w", session.ErrTransport, err)
	}
	if err = session.MapHTTPError(resp); err != nil {
		return models.ModelList{}, err
	}

	var list models.ModelList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.ModelList{}, fmt.Errorf("decode models response: %w: %w", session.ErrDecode, err)
	}

	return list, nil
}

// ListTasks implements [Service]. It GETs /tasks and returns the decoded
// task list.
func (c *Client) ListTasks(ctx context.Context) (models.TaskList, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/tasks")
	if err != nil {
		return models.TaskList{}, fmt.Errorf("list tasks request: %w: %w", session.ErrTransport, err)
	}
	if err = session.MapHTTPError(resp); err != nil {
		return models.TaskList{}, err
	}

	var list models.TaskList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.TaskList{}, fmt.Errorf("decode tasks response: %w: %w", session.ErrDecode, err)
	}

	return list, nil
}

// ProcessFile implements [Service]. It POSTs the file as a multipart upload
// together with the model, task and JSON-encoded parameters form fields.
// The missing-file precondition is checked before any network I/O; the file
// handle is released on every exit path.
func (c *Client) ProcessFile(ctx context.Context, path string, opts ProcessOptions) (models.Job, error) {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Task == "" {
		opts.Task = DefaultTask
	}

	file, err := os.Open(path)
	if err != nil {
		return models.Job{}, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()

	parameters, err := json.Marshal(opts.Parameters)
	if err != nil {
		return models.Job{}, fmt.Errorf("encode process parameters: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filepath.Base(path), file).
		SetFormData(map[string]string{
			"model":      opts.Model,
			"task":       opts.Task,
			"parameters": string(parameters),
		}).
		Post("/process")
	if err != nil {
		return models.Job{}, fmt.Errorf("process request: %w: %w", session.ErrTransport, err)
	}
	if err = session.MapHTTPError(resp); err != nil {
		return models.Job{}, err
	}

	var job models.Job
	if err = json.Unmarshal(resp.Body(), &job); err != nil {
		return models.Job{}, fmt.Errorf("decode process response: %w: %w", session.ErrDecode, err)
	}
	if job.JobID == "" {
		return models.Job{}, fmt.Errorf("%w: job id missing", session.ErrDecode)
	}

	c.log.Debug().Str("job_id", job.JobID).Str("file", path).Msg("processing submitted")
	return job, nil
}

// GetResult implements [Service]. It fetches the result record for jobID
// once; the record is transient and never cached.
func (c *Client) GetResult(ctx context.Context, jobID string) (models.Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("jobID", jobID).
		Get("/results/{jobID}")
	if err != nil {
		return models.Result{}, fmt.Errorf("result request: %w: %w", session.ErrTransport, err)
	}
	if err = session.MapHTTPError(resp); err != nil {
		return models.Result{}, err
	}

	var result models.Result
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.Result{}, fmt.Errorf("decode result response: %w: %w", session.ErrDecode, err)
	}
	if result.Status == "" {
		return models.Result{}, fmt.Errorf("%w: result status missing", session.ErrDecode)
	}

	return result, nil
}

// WaitForResult implements [Service]. The poll cadence is fixed; the
// transport-level exponential backoff applies only inside each individual
// fetch. Non-positive maxWait and pollInterval fall back to
// [DefaultWaitTimeout] and [DefaultPollInterval].
func (c *Client) WaitForResult(ctx context.Context, jobID string, maxWait, pollInterval time.Duration) (models.Result, error) {
	if maxWait <= 0 {
		maxWait = DefaultWaitTimeout
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	start := time.Now()
	for {
		result, err := c.GetResult(ctx, jobID)
		if err != nil {
			return models.Result{}, err
		}
		if result.Terminal() {
			return result, nil
		}

		if time.Since(start) > maxWait {
			return models.Result{}, fmt.Errorf("%w: job %s still %q after %s", ErrPollTimeout, jobID, result.Status, maxWait)
		}

		c.log.Debug().Str("job_id", jobID).Str("status", result.Status).Msg("job not terminal yet")

		select {
		case <-ctx.Done():
			return models.Result{}, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}
