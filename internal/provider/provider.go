package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Error struct {
	Category        string
	Code            string
	Retryable       bool
	UserMessage     string
	InternalMessage string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s/%s: %s", e.Category, e.Code, e.InternalMessage)
}

type ChatInput struct {
	TraceID     string
	System      string
	User        string
	Temperature float32
	MaxTokens   int32
}

type VisionInput struct {
	TraceID  string
	Prompt   string
	MimeType string
	Image    []byte
}

type ImageInput struct {
	TraceID     string
	Prompt      string
	AspectRatio string
	Size        string
}

type ImageOutput struct {
	MimeType string
	Data     []byte
}

// Adapter is a hosted multimodal provider. Each call is a single attempt;
// an empty text result is returned as is and left to the caller to judge.
type Adapter interface {
	Complete(ctx context.Context, in ChatInput) (string, *Error)
	Vision(ctx context.Context, in VisionInput) (string, *Error)
	GenerateImage(ctx context.Context, in ImageInput) (ImageOutput, *Error)
}

var ErrNoImage = errors.New("provider returned no image")

func classify(err error) *Error {
	switch {
	case errors.Is(err, context.Canceled):
		return &Error{Category: "canceled", Code: "CANCELED", UserMessage: "Request canceled", InternalMessage: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Category: "network", Code: "UPSTREAM_TIMEOUT", Retryable: true, UserMessage: "Upstream timeout", InternalMessage: err.Error()}
	}

	status := statusOf(err)
	msg := err.Error()
	switch {
	case status == 429 || strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return &Error{Category: "quota", Code: "RATE_LIMITED", Retryable: true, UserMessage: "Provider is busy", InternalMessage: msg}
	case status == 401 || status == 403:
		return &Error{Category: "auth", Code: "UNAUTHORIZED", UserMessage: "Provider rejected the credentials", InternalMessage: msg}
	case status >= 500:
		return &Error{Category: "network", Code: "UPSTREAM_5XX", Retryable: true, UserMessage: "Service temporary unavailable", InternalMessage: msg}
	case status >= 400:
		return &Error{Category: "invalid_request", Code: "UPSTREAM_4XX", UserMessage: "Provider rejected the request", InternalMessage: msg}
	}
	return &Error{Category: "internal", Code: "PROVIDER_ERROR", UserMessage: "Provider call failed", InternalMessage: msg}
}
