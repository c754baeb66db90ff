package provider

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// SimulateErrorMarker in any prompt makes the mock adapter fail the call.
const SimulateErrorMarker = "[simulate_error]"

// 1x1 transparent PNG.
var mockPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// MockAdapter answers every call with a fixed, well-formed document shaped
// after the requested output format.
type MockAdapter struct {
	delay time.Duration
}

func NewMockAdapter(delay time.Duration) *MockAdapter {
	return &MockAdapter{delay: delay}
}

func (m *MockAdapter) Complete(ctx context.Context, in ChatInput) (string, *Error) {
	if err := m.work(ctx, in.System+in.User); err != nil {
		return "", err
	}
	subject := firstLabeled(in.User, "**User Input:**")
	switch {
	case strings.Contains(in.System, "MULTIPLAN MODE"):
		return mockSequence(in.User, subject), nil
	case strings.Contains(in.System, "## FINAL IMAGE PROMPT"):
		return fmt.Sprintf("## IMAGE COMPOSITION\nCentered subject, rule of thirds.\n\n## FINAL IMAGE PROMPT\n%s, highly detailed, soft natural light", subject), nil
	case strings.Contains(in.System, "image transformation"):
		return fmt.Sprintf("Transform the image: %s", subject), nil
	}
	return fmt.Sprintf("## Logical Reasoning & Analysis\nThe request centers on %q.\n\n## FINAL VIDEO GENERATION PROMPT\n**Subject:** %s\n**Actions:** slow reveal\n**Camera Movement:** dolly in\n**Sound and Audio effects:** ambient\n**Visual Tone:** cinematic", subject, subject), nil
}

func (m *MockAdapter) Vision(ctx context.Context, in VisionInput) (string, *Error) {
	if err := m.work(ctx, in.Prompt); err != nil {
		return "", err
	}
	return fmt.Sprintf("## IMAGE ANALYSIS\n%s image, %d bytes.\n\n## SUGGESTED VIDEO PROMPT\n**Subject:** the scene in the image\n**Camera Movement:** slow push in", in.MimeType, len(in.Image)), nil
}

func (m *MockAdapter) GenerateImage(ctx context.Context, in ImageInput) (ImageOutput, *Error) {
	if err := m.work(ctx, in.Prompt); err != nil {
		return ImageOutput{}, err
	}
	return ImageOutput{MimeType: "image/png", Data: mockPNG}, nil
}

func (m *MockAdapter) work(ctx context.Context, text string) *Error {
	if err := waitCancelable(ctx, m.delay); err != nil {
		return &Error{
			Category:        "canceled",
			Code:            "CANCELED",
			UserMessage:     "Request canceled",
			InternalMessage: err.Error(),
		}
	}
	if strings.Contains(text, SimulateErrorMarker) {
		return &Error{
			Category:        "network",
			Code:            "UPSTREAM_TIMEOUT",
			Retryable:       true,
			UserMessage:     "Upstream timeout",
			InternalMessage: "mock simulate_error",
		}
	}
	return nil
}

func mockSequence(user, subject string) string {
	plans := strings.Count(user, "### PLAN ")
	if plans == 0 {
		plans = 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## SEQUENCE OVERVIEW\n%d-plan sequence around %q.\n", plans, subject)
	for i := 1; i <= plans; i++ {
		fmt.Fprintf(&b, "\n---\n\n## 🎬 PLAN %d — Shot %d\n**Subject:** %s\n**Transition:** cut\n", i, i, subject)
	}
	return b.String()
}

func firstLabeled(text, label string) string {
	for _, line := range strings.Split(text, "\n") {
		if rest, ok := strings.CutPrefix(line, label); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

func waitCancelable(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	timeout := time.NewTimer(d)
	defer timeout.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timeout.C:
			return nil
		case <-ticker.C:
		}
	}
}
