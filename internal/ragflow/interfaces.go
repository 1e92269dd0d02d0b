// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ragflow provides the client for the RAGFlow
// retrieval-augmented-generation service.
//
// Every request carries the bearer API key configured on the session.
// Management endpoints answer with a {code, message, data} envelope; a
// non-zero code is surfaced as an [*APIError] even when the HTTP status is
// 2xx. Knowledge-graph and RAPTOR payloads are server-side derived
// structures, so the client passes them through as raw JSON without
// imposing a schema.
package ragflow

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/ragkit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ragflow_client_mock.go -package=mock -mock_names=Service=MockRAGFlowService

// Service defines the operations of the RAG service. The CLI layer depends
// on this interface so commands can be exercised against a test double.
type Service interface {
	// CreateChatCompletion POSTs an OpenAI-compatible completion request to
	// /chats_openai/{chat_id}/chat/completions.
	CreateChatCompletion(ctx context.Context, chatID string, messages []models.ChatMessage, opts ChatOptions) (models.CompletionResponse, error)

	// CreateAgentCompletion POSTs an OpenAI-compatible completion request to
	// /agents_openai/{agent_id}/chat/completions. When opts.SessionID is
	// empty the service creates a new agent session.
	CreateAgentCompletion(ctx context.Context, agentID string, messages []models.ChatMessage, opts AgentOptions) (models.CompletionResponse, error)

	// CreateDataset creates a new dataset via POST /datasets and returns
	// the created record.
	CreateDataset(ctx context.Context, req models.CreateDatasetRequest) (models.Dataset, error)

	// ListDatasets lists datasets via GET /datasets with paging and
	// optional name/id filters.
	ListDatasets(ctx context.Context, opts ListDatasetsOptions) (models.DatasetList, error)

	// UpdateDataset applies the given field updates to a dataset via
	// PUT /datasets/{id}.
	UpdateDataset(ctx context.Context, datasetID string, updates map[string]any) error

	// DeleteDatasets deletes one or more datasets via DELETE /datasets.
	DeleteDatasets(ctx context.Context, ids []string) error

	// UploadDocuments uploads the files at paths into a dataset via
	// POST /datasets/{id}/documents (multipart, one part per file). It
	// fails locally, without any network call, when any file does not
	// exist.
	UploadDocuments(ctx context.Context, datasetID string, paths []string) ([]models.Document, error)

	// UpdateDocument applies the given field updates to a document via
	// PUT /datasets/{id}/documents/{doc_id}.
	UpdateDocument(ctx context.Context, datasetID, documentID string, updates map[string]any) error

	// ConstructKnowledgeGraph triggers knowledge-graph construction for a
	// dataset via POST /datasets/{id}/run_graphrag.
	ConstructKnowledgeGraph(ctx context.Context, datasetID string) (json.RawMessage, error)

	// GetKnowledgeGraph fetches the constructed knowledge graph via
	// GET /datasets/{id}/knowledge_graph.
	GetKnowledgeGraph(ctx context.Context, datasetID string) (json.RawMessage, error)

	// TraceKnowledgeGraph reports the construction status via
	// GET /datasets/{id}/trace_graphrag.
	TraceKnowledgeGraph(ctx context.Context, datasetID string) (json.RawMessage, error)

	// DeleteKnowledgeGraph removes the knowledge graph via
	// DELETE /datasets/{id}/knowledge_graph.
	DeleteKnowledgeGraph(ctx context.Context, datasetID string) error

	// ConstructRaptor triggers RAPTOR index construction via
	// POST /datasets/{id}/run_raptor.
	ConstructRaptor(ctx context.Context, datasetID string) (json.RawMessage, error)

	// TraceRaptor reports RAPTOR construction status via
	// GET /datasets/{id}/trace_raptor.
	TraceRaptor(ctx context.Context, datasetID string) (json.RawMessage, error)
}
