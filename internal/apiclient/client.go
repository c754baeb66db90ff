// Package apiclient calls the backend routes over HTTP.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"director/server/internal/model"
)

const maxResponseBytes = 64 << 20

// Error is a non-2xx answer from the backend. Message is the server's error
// text, or a generic fallback when the body carried none.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{baseURL: baseURL, httpClient: httpClient, logger: logger}
}

func (c *Client) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	var resp model.GenerateResponse
	err := c.do(ctx, http.MethodPost, "/api/generate", req, &resp, "Error generating prompt")
	return resp, err
}

func (c *Client) AnalyzeImage(ctx context.Context, req model.AnalyzeImageRequest) (model.AnalyzeImageResponse, error) {
	var resp model.AnalyzeImageResponse
	err := c.do(ctx, http.MethodPost, "/api/analyze-image", req, &resp, "Analysis failed")
	return resp, err
}

func (c *Client) GenerateImage(ctx context.Context, req model.GenerateImageRequest) (model.GenerateImageResponse, error) {
	var resp model.GenerateImageResponse
	err := c.do(ctx, http.MethodPost, "/api/generate-image", req, &resp, "Generation failed")
	return resp, err
}

func (c *Client) ImageModels(ctx context.Context) ([]model.ImageModel, error) {
	var resp model.ImageModelsResponse
	if err := c.do(ctx, http.MethodGet, "/api/generate-image", nil, &resp, "Failed to list models"); err != nil {
		return nil, err
	}
	return resp.Models, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer httpResp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		apiErr := &Error{Status: httpResp.StatusCode, Message: fallback}
		var envelope model.ErrorResponse
		if json.Unmarshal(rawBody, &envelope) == nil && strings.TrimSpace(envelope.Error) != "" {
			apiErr.Message = envelope.Error
		}
		c.logger.Debug("api_error",
			"path", path,
			"status", httpResp.StatusCode,
			"trace_id", httpResp.Header.Get("X-Trace-Id"),
			"message", apiErr.Message,
		)
		return apiErr
	}

	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Message returns the text to show for err: the server message for API
// errors, the generic fallback for anything else.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "An error occurred."
}
