package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleShot(t *testing.T) {
	res := ForGeneration(false, "## FINAL VIDEO GENERATION PROMPT\n**Subject:** X")
	assert.Equal(t, "", res.Analysis)
	assert.Equal(t, "**Subject:** X", res.Prompt)

	text := "## Logical Reasoning & Analysis\nThe scene needs fog.\n\n## FINAL VIDEO GENERATION PROMPT\n  A foggy pier at dawn.  \n"
	res = ForGeneration(false, text)
	assert.Equal(t, "The scene needs fog.", res.Analysis)
	assert.Equal(t, "A foggy pier at dawn.", res.Prompt)
}

func TestSingleShotWithoutHeading(t *testing.T) {
	res := ForGeneration(false, "  just a prompt  ")
	assert.Equal(t, "", res.Analysis)
	assert.Equal(t, "just a prompt", res.Prompt)

	res = ForGeneration(false, "notes\n## FINAL VIDEO GENERATION PROMPT")
	assert.Equal(t, "notes", res.Analysis)
	assert.Equal(t, "notes\n## FINAL VIDEO GENERATION PROMPT", res.Prompt)
}

func TestMultiShot(t *testing.T) {
	text := "## SEQUENCE OVERVIEW\nAbc\n\n---\n## 🎬 PLAN 1 — intro"
	res := ForGeneration(false, text)
	assert.Equal(t, "Abc", res.Analysis)
	assert.Equal(t, text, res.Prompt)

	text = "## SEQUENCE OVERVIEW\nTwo shots.\n## 🎬 PLAN 1 — open\nwide\n---\n## 🎬 PLAN 2 — close"
	res = ForGeneration(false, text)
	assert.Equal(t, "Two shots.", res.Analysis)

	res = ForGeneration(true, "## SEQUENCE OVERVIEW\nno terminator")
	assert.Empty(t, res.Analysis)
	assert.Equal(t, "## SEQUENCE OVERVIEW\nno terminator", res.Prompt)

	res = ForGeneration(true, "plain text")
	assert.Empty(t, res.Analysis)
	assert.Equal(t, "plain text", res.Prompt)
}

func TestIsMultiShot(t *testing.T) {
	assert.True(t, IsMultiShot(true, ""))
	assert.True(t, IsMultiShot(false, "x\n## 🎬 PLAN 3 — end"))
	assert.False(t, IsMultiShot(false, "## FINAL VIDEO GENERATION PROMPT\nx"))
}

func TestFinalImagePrompt(t *testing.T) {
	text := "## IMAGE COMPOSITION\ncentered\n\n## FINAL IMAGE PROMPT\n A fox in snow \n## NOTES\nnone"
	p, ok := FinalImagePrompt(text)
	assert.True(t, ok)
	assert.Equal(t, "A fox in snow", p)

	p, ok = FinalImagePrompt("## FINAL IMAGE PROMPT\nlast section")
	assert.True(t, ok)
	assert.Equal(t, "last section", p)

	_, ok = FinalImagePrompt("## FINAL IMAGE PROMPT without newline")
	assert.False(t, ok)

	res := For(ModeImage).Parse(text)
	assert.Equal(t, "A fox in snow", res.Prompt)
	assert.Equal(t, text, res.Analysis)
}

func TestUnknownModeIsPassthrough(t *testing.T) {
	assert.Equal(t, Result{Prompt: "raw"}, For(Mode("nope")).Parse("raw"))
	assert.Equal(t, Result{Prompt: "raw"}, For(ModeAnalysis).Parse("raw"))
}
