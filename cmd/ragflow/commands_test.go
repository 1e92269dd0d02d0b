// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/ragkit/internal/mock"
	"github.com/MKhiriev/ragkit/internal/ragflow"
	"github.com/MKhiriev/ragkit/models"
)

func TestRunChatCompletion_PrintsResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		CreateChatCompletion(ctx, "chat-1",
			[]models.ChatMessage{{Role: "user", Content: "Hello"}},
			ragflow.ChatOptions{Reference: true}).
		Return(models.CompletionResponse{
			ID: "cmpl-1",
			Choices: []models.CompletionChoice{
				{Message: models.ChatMessage{Role: "assistant", Content: "Hi there"}},
			},
		}, nil)

	var out bytes.Buffer
	opts := chatOptions{chatID: "chat-1", message: "Hello"}
	require.NoError(t, runChatCompletion(ctx, svc, &out, opts))

	assert.Contains(t, out.String(), "Hi there")
}

func TestRunChatCompletion_NoReferenceFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		CreateChatCompletion(ctx, "chat-1", gomock.Any(), ragflow.ChatOptions{Reference: false}).
		Return(models.CompletionResponse{}, nil)

	var out bytes.Buffer
	opts := chatOptions{chatID: "chat-1", message: "Hello", noReference: true}
	require.NoError(t, runChatCompletion(ctx, svc, &out, opts))
}

func TestRunAgentCompletion_ForwardsSessionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		CreateAgentCompletion(ctx, "agent-1", gomock.Any(), ragflow.AgentOptions{SessionID: "sess-9"}).
		Return(models.CompletionResponse{SessionID: "sess-9"}, nil)

	var out bytes.Buffer
	opts := agentOptions{agentID: "agent-1", message: "Hello", sessionID: "sess-9"}
	require.NoError(t, runAgentCompletion(ctx, svc, &out, opts))

	assert.Contains(t, out.String(), "sess-9")
}

func TestRunDatasetCreate_PrintsNameAndID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		CreateDataset(ctx, models.CreateDatasetRequest{Name: "kb1"}).
		Return(models.Dataset{ID: "d1", Name: "kb1"}, nil)

	var out bytes.Buffer
	opts := datasetCreateOptions{name: "kb1"}
	require.NoError(t, runDatasetCreate(ctx, svc, &out, opts))

	assert.Contains(t, out.String(), "Created dataset: kb1 (ID: d1)")
}

func TestRunDatasetList_PrintsSummaryLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		ListDatasets(ctx, ragflow.ListDatasetsOptions{Page: 1, PageSize: 30}).
		Return(models.DatasetList{
			Total: 2,
			Datasets: []models.Dataset{
				{ID: "d1", Name: "kb1", DocumentCount: 3},
				{ID: "d2", Name: "kb2", DocumentCount: 0},
			},
		}, nil)

	var out bytes.Buffer
	opts := datasetListOptions{page: 1, pageSize: 30}
	require.NoError(t, runDatasetList(ctx, svc, &out, opts))

	assert.Contains(t, out.String(), "Found 2 datasets:")
	assert.Contains(t, out.String(), "- kb1 (ID: d1) - 3 documents")
	assert.Contains(t, out.String(), "- kb2 (ID: d2) - 0 documents")
}

func TestRunDatasetUpdate_OnlyChangedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		UpdateDataset(ctx, "d1", map[string]any{"name": "kb1-renamed"}).
		Return(nil)

	var out bytes.Buffer
	opts := datasetUpdateOptions{datasetID: "d1", updates: map[string]any{"name": "kb1-renamed"}}
	require.NoError(t, runDatasetUpdate(ctx, svc, &out, opts))

	assert.Contains(t, out.String(), "Updated dataset d1")
}

func TestRunDatasetUpdate_NoFieldsIsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	var out bytes.Buffer
	opts := datasetUpdateOptions{datasetID: "d1", updates: map[string]any{}}
	err := runDatasetUpdate(ctx, svc, &out, opts)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")
}

func TestRunDatasetDelete_PrintsCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().DeleteDatasets(ctx, []string{"d1", "d2"}).Return(nil)

	var out bytes.Buffer
	require.NoError(t, runDatasetDelete(ctx, svc, &out, []string{"d1", "d2"}))

	assert.Contains(t, out.String(), "Deleted 2 datasets")
}

func TestRunDocumentUpload_PrintsDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		UploadDocuments(ctx, "d1", []string{"a.txt", "b.txt"}).
		Return([]models.Document{
			{ID: "doc-1", Name: "a.txt"},
			{ID: "doc-2", Name: "b.txt"},
		}, nil)

	var out bytes.Buffer
	opts := documentUploadOptions{datasetID: "d1", files: []string{"a.txt", "b.txt"}}
	require.NoError(t, runDocumentUpload(ctx, svc, &out, opts))

	assert.Contains(t, out.String(), "Uploaded 2 documents")
	assert.Contains(t, out.String(), "- a.txt (ID: doc-1)")
}

func TestRunDocumentUpload_ErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		UploadDocuments(ctx, "d1", gomock.Any()).
		Return(nil, errors.New("dataset not found"))

	var out bytes.Buffer
	opts := documentUploadOptions{datasetID: "d1", files: []string{"a.txt"}}
	err := runDocumentUpload(ctx, svc, &out, opts)

	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunDocumentUpdate_OnlyChangedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		UpdateDocument(ctx, "d1", "doc-1", map[string]any{"chunk_method": "qa"}).
		Return(nil)

	var out bytes.Buffer
	opts := documentUpdateOptions{
		datasetID:  "d1",
		documentID: "doc-1",
		updates:    map[string]any{"chunk_method": "qa"},
	}
	require.NoError(t, runDocumentUpdate(ctx, svc, &out, opts))

	assert.Contains(t, out.String(), "Updated document doc-1")
}

func TestRunGraphGet_PrintsIndentedGraph(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		GetKnowledgeGraph(ctx, "d1").
		Return(json.RawMessage(`{"graph":{"nodes":[{"id":"n1"}]}}`), nil)

	var out bytes.Buffer
	require.NoError(t, runGraphGet(ctx, svc, &out, "d1"))

	assert.Contains(t, out.String(), `"nodes"`)
	assert.Contains(t, out.String(), "\n  ") // indented
}

func TestRunGraphDelete_PrintsConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().DeleteKnowledgeGraph(ctx, "d1").Return(nil)

	var out bytes.Buffer
	require.NoError(t, runGraphDelete(ctx, svc, &out, "d1"))

	assert.Contains(t, out.String(), "Deleted knowledge graph of dataset d1")
}

func TestRunRaptorRun_PrintsStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		ConstructRaptor(ctx, "d1").
		Return(json.RawMessage(`{"task_id":"t1"}`), nil)

	var out bytes.Buffer
	require.NoError(t, runRaptorRun(ctx, svc, &out, "d1"))

	assert.Contains(t, out.String(), "RAPTOR construction started for dataset d1")
	assert.Contains(t, out.String(), "t1")
}

func TestRunRaptorTrace_EmptyPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().TraceRaptor(ctx, "d1").Return(nil, nil)

	var out bytes.Buffer
	require.NoError(t, runRaptorTrace(ctx, svc, &out, "d1"))

	assert.Equal(t, "{}\n", out.String())
}

func TestRunGraphRun_APIErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRAGFlowService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		ConstructKnowledgeGraph(ctx, "d1").
		Return(nil, &ragflow.APIError{Code: 102, Message: "dataset has no documents"})

	var out bytes.Buffer
	err := runGraphRun(ctx, svc, &out, "d1")

	require.Error(t, err)
	var apiErr *ragflow.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 102, apiErr.Code)
}
