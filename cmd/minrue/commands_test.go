// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/ragkit/internal/minrue"
	"github.com/MKhiriev/ragkit/internal/mock"
	"github.com/MKhiriev/ragkit/models"
)

func TestRunHealth_PrintsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMinRUEService(ctrl)
	ctx := context.Background()

	svc.EXPECT().Health(ctx).Return(models.HealthStatus{
		Status:  "ok",
		Service: "minrue",
		Version: "1.2.0",
	}, nil)

	var out bytes.Buffer
	require.NoError(t, runHealth(ctx, svc, &out))

	assert.Contains(t, out.String(), `"status": "ok"`)
	assert.Contains(t, out.String(), `"version": "1.2.0"`)
}

func TestRunHealth_ErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMinRUEService(ctrl)
	ctx := context.Background()

	svc.EXPECT().Health(ctx).Return(models.HealthStatus{}, errors.New("service unreachable"))

	var out bytes.Buffer
	err := runHealth(ctx, svc, &out)

	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunModels_PrintsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMinRUEService(ctrl)
	ctx := context.Background()

	svc.EXPECT().ListModels(ctx).Return(models.ModelList{
		Models: []string{"mistral-7b-instruct", "qwen2-7b"},
	}, nil)

	var out bytes.Buffer
	require.NoError(t, runModels(ctx, svc, &out))

	assert.Contains(t, out.String(), "mistral-7b-instruct")
	assert.Contains(t, out.String(), "qwen2-7b")
}

func TestRunTasks_PrintsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMinRUEService(ctrl)
	ctx := context.Background()

	svc.EXPECT().ListTasks(ctx).Return(models.TaskList{
		Tasks: []string{"text-refinement", "summarization"},
	}, nil)

	var out bytes.Buffer
	require.NoError(t, runTasks(ctx, svc, &out))

	assert.Contains(t, out.String(), "text-refinement")
}

// ── process ─────────────────────────────────────────────────────────────────

func TestRunProcess_PrintsJobID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMinRUEService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		ProcessFile(ctx, "report.docx", minrue.ProcessOptions{Model: "mistral-7b-instruct", Task: "text-refinement"}).
		Return(models.Job{JobID: "job-42", Status: models.StatusPending}, nil)

	var out bytes.Buffer
	opts := processOptions{model: "mistral-7b-instruct", task: "text-refinement"}
	require.NoError(t, runProcess(ctx, svc, &out, "report.docx", opts))

	assert.Contains(t, out.String(), "Processing started with job ID: job-42")
	assert.Contains(t, out.String(), "To check results later: minrue result job-42")
}

func TestRunProcess_ForwardsParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMinRUEService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		ProcessFile(ctx, "report.docx", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, got minrue.ProcessOptions) (models.Job, error) {
			require.NotNil(t, got.Parameters.Temperature)
			assert.InDelta(t, 0.7, *got.Parameters.Temperature, 1e-9)
			require.NotNil(t, got.Parameters.MaxTokens)
			assert.Equal(t, 512, *got.Parameters.MaxTokens)
			return models.Job{JobID: "job-42"}, nil
		})

	var out bytes.Buffer
	opts := processOptions{
		model:          "mistral-7b-instruct",
		task:           "text-refinement",
		temperature:    0.7,
		maxTokens:      512,
		hasTemperature: true,
		hasMaxTokens:   true,
	}
	require.NoError(t, runProcess(ctx, svc, &out, "report.docx", opts))
}

func TestRunProcess_WithOutputWaitsAndSaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMinRUEService(ctrl)
	ctx := context.Background()
	outputPath := filepath.Join(t.TempDir(), "refined.txt")

	gomock.InOrder(
		svc.EXPECT().
			ProcessFile(ctx, "report.docx", gomock.Any()).
			Return(models.Job{JobID: "job-42"}, nil),
		svc.EXPECT().
			WaitForResult(ctx, "job-42", processWaitTimeout, processPollInterval).
			Return(models.Result{Status: models.StatusCompleted, Output: "refined text"}, nil),
	)

	var out bytes.Buffer
	opts := processOptions{output: outputPath, model: "mistral-7b-instruct", task: "text-refinement"}
	require.NoError(t, runProcess(ctx, svc, &out, "report.docx", opts))

	saved, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "refined text", string(saved))
	assert.Contains(t, out.String(), "Results saved to: "+outputPath)
}

func TestRunProcess_RemoteFailureIsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMinRUEService(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		svc.EXPECT().
			ProcessFile(ctx, "report.docx", gomock.Any()).
			Return(models.Job{JobID: "job-42"}, nil),
		svc.EXPECT().
			WaitForResult(ctx, "job-42", processWaitTimeout, processPollInterval).
			Return(models.Result{Status: models.StatusFailed, Error: "model overloaded"}, nil),
	)

	var out bytes.Buffer
	opts := processOptions{output: filepath.Join(t.TempDir(), "refined.txt")}
	err := runProcess(ctx, svc, &out, "report.docx", opts)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

// ── result ──────────────────────────────────────────────────────────────────

func TestRunResult_WaitsAndPrintsOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMinRUEService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		WaitForResult(ctx, "job-42", minrue.DefaultWaitTimeout, resultFlags.interval).
		Return(models.Result{Status: models.StatusCompleted, Output: "refined text"}, nil)

	var out bytes.Buffer
	opts := resultOptions{wait: true, timeout: minrue.DefaultWaitTimeout, interval: resultFlags.interval}
	require.NoError(t, runResult(ctx, svc, &out, "job-42", opts))

	assert.Contains(t, out.String(), "Retrieving results for job ID: job-42")
	assert.Contains(t, out.String(), "refined text")
}

func TestRunResult_SavesToFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMinRUEService(ctrl)
	ctx := context.Background()
	outputPath := filepath.Join(t.TempDir(), "out.txt")

	svc.EXPECT().
		WaitForResult(ctx, "job-42", gomock.Any(), gomock.Any()).
		Return(models.Result{Status: models.StatusCompleted, Output: "refined text"}, nil)

	var out bytes.Buffer
	opts := resultOptions{wait: true, output: outputPath}
	require.NoError(t, runResult(ctx, svc, &out, "job-42", opts))

	saved, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "refined text", string(saved))
}

func TestRunResult_SingleFetchOfRunningJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMinRUEService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		GetResult(ctx, "job-42").
		Return(models.Result{Status: models.StatusRunning}, nil)

	var out bytes.Buffer
	opts := resultOptions{wait: false}
	require.NoError(t, runResult(ctx, svc, &out, "job-42", opts))

	assert.Contains(t, out.String(), models.StatusRunning)
}

func TestRunResult_FailedJobIsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMinRUEService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		WaitForResult(ctx, "job-42", gomock.Any(), gomock.Any()).
		Return(models.Result{Status: models.StatusFailed, Error: "corrupt input"}, nil)

	var out bytes.Buffer
	opts := resultOptions{wait: true}
	err := runResult(ctx, svc, &out, "job-42", opts)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt input")
}

func TestRunResult_PollTimeoutPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMinRUEService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		WaitForResult(ctx, "job-42", gomock.Any(), gomock.Any()).
		Return(models.Result{}, minrue.ErrPollTimeout)

	var out bytes.Buffer
	opts := resultOptions{wait: true}
	err := runResult(ctx, svc, &out, "job-42", opts)

	require.ErrorIs(t, err, minrue.ErrPollTimeout)
}
