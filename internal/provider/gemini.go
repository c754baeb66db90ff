package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

type GeminiConfig struct {
	APIKey      string
	TextModel   string
	VisionModel string
	ImageModel  string
	HTTPClient  *http.Client
	// BaseURL overrides the API endpoint; empty uses the public one.
	BaseURL string
	Logger  *slog.Logger
}

type GeminiAdapter struct {
	client *genai.Client
	cfg    GeminiConfig
	log    *slog.Logger
}

func NewGeminiAdapter(ctx context.Context, cfg GeminiConfig) (*GeminiAdapter, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &GeminiAdapter{client: client, cfg: cfg, log: logger}, nil
}

func (g *GeminiAdapter) Complete(ctx context.Context, in ChatInput) (string, *Error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(in.Temperature),
		MaxOutputTokens: in.MaxTokens,
	}
	if in.System != "" {
		config.SystemInstruction = genai.NewContentFromText(in.System, genai.RoleUser)
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.TextModel, genai.Text(in.User), config)
	if err != nil {
		return "", classify(err)
	}
	return responseText(resp), nil
}

func (g *GeminiAdapter) Vision(ctx context.Context, in VisionInput) (string, *Error) {
	parts := []*genai.Part{
		genai.NewPartFromText(in.Prompt),
		genai.NewPartFromBytes(in.Image, in.MimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.VisionModel, contents, nil)
	if err != nil {
		return "", classify(err)
	}
	return responseText(resp), nil
}

func (g *GeminiAdapter) GenerateImage(ctx context.Context, in ImageInput) (ImageOutput, *Error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}
	if in.AspectRatio != "" {
		config.ImageConfig = &genai.ImageConfig{AspectRatio: in.AspectRatio}
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.ImageModel, genai.Text(in.Prompt), config)
	if err != nil {
		return ImageOutput{}, classify(err)
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mime := part.InlineData.MIMEType
				if mime == "" {
					mime = "image/png"
				}
				return ImageOutput{MimeType: mime, Data: part.InlineData.Data}, nil
			}
		}
	}
	g.log.Debug("gemini_no_image", "trace_id", in.TraceID, "model", g.cfg.ImageModel)
	return ImageOutput{}, &Error{
		Category:        "empty_result",
		Code:            "NO_IMAGE",
		UserMessage:     "No image generated",
		InternalMessage: ErrNoImage.Error(),
	}
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Text != "" && !part.Thought {
				b.WriteString(part.Text)
			}
		}
		if b.Len() > 0 {
			break
		}
	}
	return b.String()
}

func statusOf(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}
