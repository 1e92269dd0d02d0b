package ragflow

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/ragkit/internal/logger"
	"github.com/MKhiriev/ragkit/internal/session"
	"github.com/MKhiriev/ragkit/models"
)

// Dataset creation defaults, mirroring the service's own.
const (
	DefaultEmbeddingModel = "BAAI/bge-large-zh-v1.5@BAAI"
	DefaultPermission     = "me"
	DefaultChunkMethod    = "naive"
)

// List paging defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 30
	DefaultOrderBy  = "create_time"
)

// ChatOptions carries the RAG-specific knobs of a chat completion.
type ChatOptions struct {
	// Stream requests a streaming response.
	Stream bool
	// Reference asks the service to include retrieval references.
	Reference bool
	// MetadataCondition filters retrieval by document metadata.
	MetadataCondition map[string]any
}

// AgentOptions carries the knobs of an agent completion.
type AgentOptions struct {
	Stream bool
	// SessionID continues an existing agent session; empty starts a new
	// one server-side.
	SessionID string
}

// ListDatasetsOptions carries paging and filters for ListDatasets. Zero
// paging values fall back to the service defaults.
type ListDatasetsOptions struct {
	Page     int
	PageSize int
	OrderBy  string
	Desc     bool
	Name     string
	ID       string
}

// Client implements [Service] over HTTP.
type Client struct {
	http *session.Client
	log  *logger.Logger
}

var _ Service = (*Client)(nil)

// New constructs a RAG service client from the given session configuration.
// cfg.APIKey becomes the bearer credential of every request. Returns an
// error if the base URL is invalid.
func New(cfg session.Config, log *logger.Logger) (*Client, error) {
	httpClient, err := session.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create ragflow session: %w", err)
	}

	return &Client{http: httpClient, log: log}, nil
}

// CreateChatCompletion implements [Service].
func (c *Client) CreateChatCompletion(ctx context.Context, chatID string, messages []models.ChatMessage, opts ChatOptions) (models.CompletionResponse, error) {
	body := models.ChatCompletionRequest{
		Model:    "model", // parsed server-side
		Messages: messages,
		Stream:   opts.Stream,
		ExtraBody: models.ChatExtraBody{
			Reference:         opts.Reference,
			MetadataCondition: opts.MetadataCondition,
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("chatID", chatID).
		SetBody(body).
		Post("/chats_openai/{chatID}/chat/completions")
	if err != nil {
		return models.CompletionResponse{}, fmt.Errorf("chat completion request: %w: %w", session.ErrTransport, err)
	}

	return decodeCompletion(resp)
}

// CreateAgentCompletion implements [Service].
func (c *Client) CreateAgentCompletion(ctx context.Context, agentID string, messages []models.ChatMessage, opts AgentOptions) (models.CompletionResponse, error) {
	body := models.AgentCompletionRequest{
		Model:     "model",
		Messages:  messages,
		Stream:    opts.Stream,
		SessionID: opts.SessionID,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("agentID", agentID).
		SetBody(body).
		Post("/agents_openai/{agentID}/chat/completions")
	if err != nil {
		return models.CompletionResponse{}, fmt.Errorf("agent completion request: %w: %w", session.ErrTransport, err)
	}

	return decodeCompletion(resp)
}

// CreateDataset implements [Service]. Empty embedding model, permission and
// chunk method fall back to the service defaults.
func (c *Client) CreateDataset(ctx context.Context, req models.CreateDatasetRequest) (models.Dataset, error) {
	if req.EmbeddingModel == "" {
		req.EmbeddingModel = DefaultEmbeddingModel
	}
	if req.Permission == "" {
		req.Permission = DefaultPermission
	}
	if req.ChunkMethod == "" {
		req.ChunkMethod = DefaultChunkMethod
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/datasets")
	if err != nil {
		return models.Dataset{}, fmt.Errorf("create dataset request: %w: %w", session.ErrTransport, err)
	}
	if err = session.MapHTTPError(resp); err != nil {
		return models.Dataset{}, err
	}

	var dataset models.Dataset
	if _, err = decodeEnvelope(resp, &dataset); err != nil {
		return models.Dataset{}, err
	}

	c.log.Debug().Str("dataset_id", dataset.ID).Str("name", dataset.Name).Msg("dataset created")
	return dataset, nil
}

// ListDatasets implements [Service].
func (c *Client) ListDatasets(ctx context.Context, opts ListDatasetsOptions) (models.DatasetList, error) {
	if opts.Page <= 0 {
		opts.Page = DefaultPage
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.OrderBy == "" {
		opts.OrderBy = DefaultOrderBy
		opts.Desc = true
	}

	params := map[string]string{
		"page":      strconv.Itoa(opts.Page),
		"page_size": strconv.Itoa(opts.PageSize),
		"orderby":   opts.OrderBy,
		"desc":      strconv.FormatBool(opts.Desc),
	}
	if opts.Name != "" {
		params["name"] = opts.Name
	}
	if opts.ID != "" {
		params["id"] = opts.ID
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/datasets")
	if err != nil {
		return models.DatasetList{}, fmt.Errorf("list datasets request: %w: %w", session.ErrTransport, err)
	}
	if err = session.MapHTTPError(resp); err != nil {
		return models.DatasetList{}, err
	}

	var datasets []models.Dataset
	total, err := decodeEnvelope(resp, &datasets)
	if err != nil {
		return models.DatasetList{}, err
	}
	if total == 0 {
		total = len(datasets)
	}

	return models.DatasetList{Total: total, Datasets: datasets}, nil
}

// UpdateDataset implements [Service].
func (c *Client) UpdateDataset(ctx context.Context, datasetID string, updates map[string]any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("datasetID", datasetID).
		SetBody(updates).
		Put("/datasets/{datasetID}")
	if err != nil {
		return fmt.Errorf("update dataset request: %w: %w", session.ErrTransport, err)
	}
	if err = session.MapHTTPError(resp); err != nil {
		return err
	}

	_, err = decodeEnvelope(resp, nil)
	return err
}

// DeleteDatasets implements [Service]. The service expects the ids in a
// JSON body on the DELETE request.
func (c *Client) DeleteDatasets(ctx context.Context, ids []string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string][]string{"ids": ids}).
		Delete("/datasets")
	if err != nil {
		return fmt.Errorf("delete datasets request: %w: %w", session.ErrTransport, err)
	}
	if err = session.MapHTTPError(resp); err != nil {
		return err
	}

	_, err = decodeEnvelope(resp, nil)
	return err
}

// UploadDocuments implements [Service]. All files are stat-checked before
// any of them is opened or any network I/O happens; every opened handle is
// closed on every exit path.
func (c *Client) UploadDocuments(ctx context.Context, datasetID string, paths []string) ([]models.Document, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no documents to upload")
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("stat document: %w", err)
		}
	}

	files := make([]*os.File, 0, len(paths))
	defer func() {
		for _, file := range files {
			_ = file.Close()
		}
	}()

	req := c.http.R().
		SetContext(ctx).
		SetPathParam("datasetID", datasetID)
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open document: %w", err)
		}
		files = append(files, file)
		req.SetFileReader("file", filepath.Base(path), file)
	}

	resp, err := req.Post("/datasets/{datasetID}/documents")
	if err != nil {
		return nil, fmt.Errorf("upload documents request: %w: %w", session.ErrTransport, err)
	}
	if err = session.MapHTTPError(resp); err != nil {
		return nil, err
	}

	var documents []models.Document
	if _, err = decodeEnvelope(resp, &documents); err != nil {
		return nil, err
	}

	c.log.Debug().Str("dataset_id", datasetID).Int("count", len(documents)).Msg("documents uploaded")
	return documents, nil
}

// UpdateDocument implements [Service].
func (c *Client) UpdateDocument(ctx context.Context, datasetID, documentID string, updates map[string]any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("datasetID", datasetID).
		SetPathParam("documentID", documentID).
		SetBody(updates).
		Put("/datasets/{datasetID}/documents/{documentID}")
	if err != nil {
		return fmt.Errorf("update document request: %w: %w", session.ErrTransport, err)
	}
	if err = session.MapHTTPError(resp); err != nil {
		return err
	}

	_, err = decodeEnvelope(resp, nil)
	return err
}

// ConstructKnowledgeGraph implements [Service].
func (c *Client) ConstructKnowledgeGraph(ctx context.Context, datasetID string) (json.RawMessage, error) {
	return c.datasetOp(ctx, resty.MethodPost, datasetID, "/datasets/{datasetID}/run_graphrag", "construct knowledge graph")
}

// GetKnowledgeGraph implements [Service].
func (c *Client) GetKnowledgeGraph(ctx context.Context, datasetID string) (json.RawMessage, error) {
	return c.datasetOp(ctx, resty.MethodGet, datasetID, "/datasets/{datasetID}/knowledge_graph", "get knowledge graph")
}

// TraceKnowledgeGraph implements [Service].
func (c *Client) TraceKnowledgeGraph(ctx context.Context, datasetID string) (json.RawMessage, error) {
	return c.datasetOp(ctx, resty.MethodGet, datasetID, "/datasets/{datasetID}/trace_graphrag", "trace knowledge graph")
}

// DeleteKnowledgeGraph implements [Service].
func (c *Client) DeleteKnowledgeGraph(ctx context.Context, datasetID string) error {
	_, err := c.datasetOp(ctx, resty.MethodDelete, datasetID, "/datasets/{datasetID}/knowledge_graph", "delete knowledge graph")
	return err
}

// ConstructRaptor implements [Service].
func (c *Client) ConstructRaptor(ctx context.Context, datasetID string) (json.RawMessage, error) {
	return c.datasetOp(ctx, resty.MethodPost, datasetID, "/datasets/{datasetID}/run_raptor", "construct raptor index")
}

// TraceRaptor implements [Service].
func (c *Client) TraceRaptor(ctx context.Context, datasetID string) (json.RawMessage, error) {
	return c.datasetOp(ctx, resty.MethodGet, datasetID, "/datasets/{datasetID}/trace_raptor", "trace raptor index")
}

// datasetOp issues a bodyless dataset-scoped request and returns the raw
// envelope data. Knowledge-graph and RAPTOR payloads are opaque server-side
// structures, so no schema is imposed on them.
func (c *Client) datasetOp(ctx context.Context, method, datasetID, path, op string) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("datasetID", datasetID).
		Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w: %w", op, session.ErrTransport, err)
	}
	if err = session.MapHTTPError(resp); err != nil {
		return nil, err
	}

	var data json.RawMessage
	if _, err = decodeEnvelope(resp, &data); err != nil {
		return nil, err
	}

	return data, nil
}

// decodeEnvelope unwraps the {code, message, data} response envelope into
// out (when out is non-nil and data is present) and returns the top-level
// total counter. A non-zero code maps to [*APIError].
func decodeEnvelope(resp *resty.Response, out any) (int, error) {
	var envelope models.Envelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return 0, fmt.Errorf("decode response envelope: %w: %w", session.ErrDecode, err)
	}
	if envelope.Code != 0 {
		return 0, &APIError{Code: envelope.Code, Message: envelope.Message}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return 0, fmt.Errorf("decode response data: %w: %w", session.ErrDecode, err)
		}
	}

	return envelope.Total, nil
}

// decodeCompletion handles the OpenAI-compatible endpoints, which answer
// either with a bare completion object or, on application-level failure,
// with the {code, message} envelope.
func decodeCompletion(resp *resty.Response) (models.CompletionResponse, error) {
	if err := session.MapHTTPError(resp); err != nil {
		return models.CompletionResponse{}, err
	}

	var probe struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &probe); err == nil && probe.Code != 0 {
		return models.CompletionResponse{}, &APIError{Code: probe.Code, Message: probe.Message}
	}

	var completion models.CompletionResponse
	if err := json.Unmarshal(resp.Body(), &completion); err != nil {
		return models.CompletionResponse{}, fmt.Errorf("decode completion response: %w: %w", session.ErrDecode, err)
	}

	return completion, nil
}
