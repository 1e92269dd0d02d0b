// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package minrue provides the client for the MinRUE document-processing
// service.
//
// The client is a pure request/response facade over the remote HTTP API:
// every method issues one request (the bounded poll in
// [Service.WaitForResult] being the only multi-round-trip construct) and no
// server-side state is cached locally. Transient failures are retried by the
// underlying [session.Client]; errors are discriminated via the sentinels in
// the session package plus [ErrPollTimeout] defined here.
package minrue

import (
	"context"
	"time"

	"github.com/MKhiriev/ragkit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/minrue_client_mock.go -package=mock -mock_names=Service=MockMinRUEService

// Service defines the operations of the document-processing service. The
// CLI layer depends on this interface so commands can be exercised against a
// test double.
type Service interface {
	// Health checks the service health status via GET /health.
	Health(ctx context.Context) (models.HealthStatus, error)

	// ListModels lists the models available for processing via GET /models.
	ListModels(ctx context.Context) (models.ModelList, error)

	// ListTasks lists the supported task types via GET /tasks.
	ListTasks(ctx context.Context) (models.TaskList, error)

	// ProcessFile uploads the file at path for processing via
	// POST /process and returns the job reference. It fails locally,
	// without any network call, when the file does not exist (the error
	// wraps fs.ErrNotExist).
	ProcessFile(ctx context.Context, path string, opts ProcessOptions) (models.Job, error)

	// GetResult fetches the current result record for jobID via
	// GET /results/{job_id}. A response without a status field is a
	// decode failure, never a guessed default.
	GetResult(ctx context.Context, jobID string) (models.Result, error)

	// WaitForResult polls GET /results/{job_id} at a fixed pollInterval
	// cadence until the job reaches a terminal status, returning a wrapped
	// [ErrPollTimeout] once more than maxWait has elapsed since the first
	// fetch. Remote errors propagate immediately from the failing poll.
	WaitForResult(ctx context.Context, jobID string, maxWait, pollInterval time.Duration) (models.Result, error)
}
