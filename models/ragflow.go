package models

import "encoding/json"

// Envelope is the generic RAG service response wrapper {code, message, data}.
// A zero Code means success; any other value is an application-level error
// described by Message. Data is left raw so each operation can decode it
// into its own result shape.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Total   int             `json:"total,omitempty"`
}

// ChatMessage is a single OpenAI-style conversation message.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatExtraBody carries the RAG-specific extensions of an OpenAI-compatible
// chat completion request.
type ChatExtraBody struct {
	Reference         bool           `json:"reference"`
	MetadataCondition map[string]any `json:"metadata_condition,omitempty"`
}

// ChatCompletionRequest is the body of
// POST /chats_openai/{chat_id}/chat/completions. The Model field is parsed
// server-side and carries no meaning here.
type ChatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []ChatMessage `json:"messages"`
	Stream    bool          `json:"stream"`
	ExtraBody ChatExtraBody `json:"extra_body"`
}

// AgentCompletionRequest is the body of
// POST /agents_openai/{agent_id}/chat/completions. SessionID is optional;
// when empty the service creates a new agent session.
type AgentCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []ChatMessage `json:"messages"`
	Stream    bool          `json:"stream"`
	SessionID string        `json:"session_id,omitempty"`
}

// CompletionChoice is one generated answer within a completion response.
type CompletionChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason,omitempty"`
}

// CompletionUsage reports token accounting for a completion.
type CompletionUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionResponse is the OpenAI-compatible completion result returned by
// both the chat and the agent endpoints.
type CompletionResponse struct {
	ID        string             `json:"id"`
	Object    string             `json:"object,omitempty"`
	Model     string             `json:"model,omitempty"`
	Created   int64              `json:"created,omitempty"`
	Choices   []CompletionChoice `json:"choices"`
	Usage     *CompletionUsage   `json:"usage,omitempty"`
	Reference json.RawMessage    `json:"reference,omitempty"`
	SessionID string             `json:"session_id,omitempty"`
}

// Dataset describes a named collection of documents managed by the RAG
// service.
type Dataset struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EmbeddingModel string `json:"embedding_model,omitempty"`
	Permission     string `json:"permission,omitempty"`
	ChunkMethod    string `json:"chunk_method,omitempty"`
	DocumentCount  int    `json:"document_count"`
	ChunkCount     int    `json:"chunk_count,omitempty"`
	CreateTime     int64  `json:"create_time,omitempty"`
	UpdateTime     int64  `json:"update_time,omitempty"`
}

// CreateDatasetRequest is the body of POST /datasets.
type CreateDatasetRequest struct {
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	EmbeddingModel string         `json:"embedding_model"`
	Permission     string         `json:"permission"`
	ChunkMethod    string         `json:"chunk_method"`
	ParserConfig   map[string]any `json:"parser_config,omitempty"`
}

// DatasetList is the decoded result of GET /datasets.
type DatasetList struct {
	Total    int
	Datasets []Dataset
}

// Document describes a single uploaded document within a dataset.
type Document struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DatasetID   string `json:"dataset_id,omitempty"`
	Size        int64  `json:"size,omitempty"`
	Type        string `json:"type,omitempty"`
	ChunkMethod string `json:"chunk_method,omitempty"`
	Run         string `json:"run,omitempty"`
}
