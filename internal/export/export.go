// Package export renders prompts for download.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"director/server/internal/model"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Text is the plain-text download of an analysis and its final prompt.
func Text(analysis, prompt string) string {
	return fmt.Sprintf("=== ANALYSIS ===\n%s\n\n=== FINAL PROMPT ===\n%s", analysis, prompt)
}

func FileName(now time.Time) string {
	return fmt.Sprintf("director-ai-prompt-%d.txt", now.UnixMilli())
}

// Markdown lays out a history entry as a markdown document.
func Markdown(entry model.HistoryEntry) string {
	var b strings.Builder
	b.WriteString("# DIRECTOR.AI prompt\n\n")
	fmt.Fprintf(&b, "- **Model:** %s\n", entry.Model)
	fmt.Fprintf(&b, "- **Date:** %s\n", model.Timestamp(entry.Timestamp))
	if entry.Options.Multiplan && len(entry.Options.Shots) > 0 {
		fmt.Fprintf(&b, "- **Plans:** %d\n", len(entry.Options.Shots))
	}
	b.WriteString("\n## Input\n\n")
	b.WriteString(quote(entry.UserInput))
	if strings.TrimSpace(entry.Analysis) != "" {
		b.WriteString("\n\n## Analysis\n\n")
		b.WriteString(strings.TrimSpace(entry.Analysis))
	}
	b.WriteString("\n\n## Final prompt\n\n")
	b.WriteString(strings.TrimSpace(entry.GeneratedPrompt))
	b.WriteString("\n")
	return b.String()
}

func quote(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		lines[i] = "> " + l
	}
	return strings.Join(lines, "\n")
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// HTML renders a history entry as a standalone HTML page. Raw HTML in the
// entry is escaped, not passed through.
func HTML(entry model.HistoryEntry) (string, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(entry)), &body); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>DIRECTOR.AI prompt</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}
