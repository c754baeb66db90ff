// Package parser extracts the analysis and prompt sections from provider
// responses. Extraction is best effort: a response without the expected
// headings is returned whole as the prompt.
package parser

import "strings"

const (
	ReasoningHeading   = "## Logical Reasoning & Analysis"
	FinalVideoHeading  = "## FINAL VIDEO GENERATION PROMPT"
	OverviewHeading    = "## SEQUENCE OVERVIEW"
	PlanHeadingPrefix  = "## 🎬 PLAN"
	FinalImageHeading  = "## FINAL IMAGE PROMPT"
	sectionRule        = "\n---"
	nextSectionHeading = "\n##"
)

type Mode string

const (
	ModeSingleShot Mode = "single-shot"
	ModeMultiShot  Mode = "multi-shot"
	ModeImage      Mode = "image-prompt"
	ModeAnalysis   Mode = "image-analysis"
)

type Result struct {
	Analysis string
	Prompt   string
}

type Parser interface {
	Parse(text string) Result
}

type ParserFunc func(text string) Result

func (f ParserFunc) Parse(text string) Result { return f(text) }

var registry = map[Mode]Parser{
	ModeSingleShot: ParserFunc(parseSingleShot),
	ModeMultiShot:  ParserFunc(parseMultiShot),
	ModeImage:      ParserFunc(parseImagePrompt),
	ModeAnalysis:   ParserFunc(passthrough),
}

// For returns the parser registered for mode, or the passthrough parser.
func For(mode Mode) Parser {
	if p, ok := registry[mode]; ok {
		return p
	}
	return ParserFunc(passthrough)
}

// IsMultiShot reports whether a /generate response describes a sequence of
// plans, either by its flag or by the plan headings in the text.
func IsMultiShot(flag bool, text string) bool {
	return flag || strings.Contains(text, PlanHeadingPrefix)
}

// ForGeneration parses a /generate response.
func ForGeneration(flag bool, text string) Result {
	if IsMultiShot(flag, text) {
		return For(ModeMultiShot).Parse(text)
	}
	return For(ModeSingleShot).Parse(text)
}

// parseSingleShot splits on the final prompt heading. Without the heading the
// whole text is the prompt and there is no analysis.
func parseSingleShot(text string) Result {
	parts := strings.Split(text, FinalVideoHeading)
	if len(parts) == 1 {
		return Result{Prompt: strings.TrimSpace(text)}
	}
	analysis := strings.TrimSpace(strings.Replace(parts[0], ReasoningHeading, "", 1))
	prompt := text
	if parts[1] != "" {
		prompt = parts[1]
	}
	return Result{Analysis: analysis, Prompt: strings.TrimSpace(prompt)}
}

// parseMultiShot keeps the whole text as the prompt. The analysis is the
// overview section, cut at the first rule or plan heading; without either
// terminator there is no analysis.
func parseMultiShot(text string) Result {
	res := Result{Prompt: text}
	body, ok := sectionBody(text, OverviewHeading)
	if !ok {
		return res
	}
	end := -1
	for _, stop := range []string{sectionRule, "\n" + PlanHeadingPrefix} {
		if i := strings.Index(body, stop); i >= 0 && (end < 0 || i < end) {
			end = i
		}
	}
	if end >= 0 {
		res.Analysis = strings.TrimSpace(body[:end])
	}
	return res
}

func parseImagePrompt(text string) Result {
	res := Result{Analysis: text}
	if p, ok := FinalImagePrompt(text); ok {
		res.Prompt = p
	}
	return res
}

func passthrough(text string) Result {
	return Result{Prompt: text}
}

// FinalImagePrompt returns the trimmed body of the final image prompt section,
// which runs to the next heading or the end of the text.
func FinalImagePrompt(text string) (string, bool) {
	body, ok := sectionBody(text, FinalImageHeading)
	if !ok {
		return "", false
	}
	if i := strings.Index(body, nextSectionHeading); i >= 0 {
		body = body[:i]
	}
	return strings.TrimSpace(body), true
}

// sectionBody returns what follows the first "heading\n" in text.
func sectionBody(text, heading string) (string, bool) {
	marker := heading + "\n"
	i := strings.Index(text, marker)
	if i < 0 {
		return "", false
	}
	return text[i+len(marker):], true
}
