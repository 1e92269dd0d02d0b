// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package minrue

import (
	"context"
	"encoding/json"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ragkit/internal/logger"
	"github.com/MKhiriev/ragkit/internal/session"
	"github.com/MKhiriev/ragkit/models"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	c, err := New(session.Config{
		BaseURL:        serverURL,
		RequestTimeout: 5 * time.Second,
		RetryCount:     0,
		RetryBackoff:   time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)
	return c
}

// ── Health / Models / Tasks ─────────────────────────────────────────────────

func TestHealth_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","service":"minrue","version":"0.3.1"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, "minrue", got.Service)
}

func TestHealth_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Health(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrDecode)
}

func TestListModels_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		_, _ = w.Write([]byte(`{"models":["mistral-7b-instruct","llama-3-8b"]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.ListModels(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"mistral-7b-instruct", "llama-3-8b"}, got.Models)
}

func TestListTasks_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tasks", r.URL.Path)
		_, _ = w.Write([]byte(`{"tasks":["text-refinement","summarization"]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.ListTasks(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"text-refinement", "summarization"}, got.Tasks)
}

// ── ProcessFile ─────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestProcessFile_Success(t *testing.T) {
	path := writeTempFile(t, "notes.txt", "raw notes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/process", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "mistral-7b-instruct", r.FormValue("model"))
		assert.Equal(t, "text-refinement", r.FormValue("task"))

		var params map[string]any
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("parameters")), &params))
		assert.Equal(t, 0.2, params["temperature"])

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "notes.txt", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "raw notes", string(content))

		_, _ = w.Write([]byte(`{"job_id":"job-42"}`))
	}))
	defer srv.Close()

	temperature := 0.2
	c := newTestClient(t, srv.URL)
	job, err := c.ProcessFile(context.Background(), path, ProcessOptions{
		Parameters: models.ProcessParameters{Temperature: &temperature},
	})

	require.NoError(t, err)
	assert.Equal(t, "job-42", job.JobID)
}

func TestProcessFile_MissingFileMakesNoRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.ProcessFile(context.Background(), "/no/such/file.txt", ProcessOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.EqualValues(t, 0, calls.Load())
}

func TestProcessFile_MissingJobID(t *testing.T) {
	path := writeTempFile(t, "notes.txt", "raw notes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.ProcessFile(context.Background(), path, ProcessOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrDecode)
}

// ── GetResult ───────────────────────────────────────────────────────────────

func TestGetResult_Completed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/results/job-42", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"completed","output":"Refined notes."}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.GetResult(context.Background(), "job-42")

	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, "Refined notes.", got.Output)
	assert.Empty(t, got.Error)
	assert.True(t, got.Terminal())
}

func TestGetResult_Failed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"failed","error":"model overloaded"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.GetResult(context.Background(), "job-42")

	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, got.Status)
	assert.Equal(t, "model overloaded", got.Error)
	assert.Empty(t, got.Output)
	assert.True(t, got.Terminal())
}

func TestGetResult_MissingStatusIsDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"output":"something"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.GetResult(context.Background(), "job-42")

	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrDecode)
}

func TestGetResult_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("unknown job"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.GetResult(context.Background(), "job-404")

	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrNotFound)
	assert.NotErrorIs(t, err, ErrPollTimeout)
}

// ── WaitForResult ───────────────────────────────────────────────────────────

func TestWaitForResult_TerminalOnFirstFetch(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"status":"failed","error":"boom"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.WaitForResult(context.Background(), "job-42", time.Second, 10*time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, got.Status)
	assert.EqualValues(t, 1, calls.Load())
}

func TestWaitForResult_PollsUntilCompleted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			_, _ = w.Write([]byte(`{"status":"running"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"completed","output":"done"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.WaitForResult(context.Background(), "job-42", time.Second, 5*time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, "done", got.Output)
	assert.EqualValues(t, 3, calls.Load())
}

func TestWaitForResult_TimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"pending"}`))
	}))
	defer srv.Close()

	maxWait := 30 * time.Millisecond
	interval := 10 * time.Millisecond

	c := newTestClient(t, srv.URL)
	start := time.Now()
	_, err := c.WaitForResult(context.Background(), "job-42", maxWait, interval)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPollTimeout)
	// must return within maxWait + one poll interval (plus fetch overhead)
	assert.Less(t, elapsed, maxWait+interval+500*time.Millisecond)
}

func TestWaitForResult_RemoteErrorPropagates(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad job id"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.WaitForResult(context.Background(), "job-!!", time.Second, 5*time.Millisecond)

	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrBadRequest)
	assert.NotErrorIs(t, err, ErrPollTimeout)
	assert.EqualValues(t, 1, calls.Load())
}

func TestWaitForResult_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"running"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(15 * time.Millisecond)
		cancel()
	}()

	c := newTestClient(t, srv.URL)
	_, err := c.WaitForResult(ctx, "job-42", time.Minute, 100*time.Millisecond)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
