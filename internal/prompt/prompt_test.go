package prompt

import (
	"strings"
	"testing"

	"director/server/internal/model"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestVideoSingleShot(t *testing.T) {
	chat := Video(model.GenerateRequest{
		UserInput:         "a lighthouse in a storm",
		Model:             "VEO",
		StyleVisuel:       []string{"Cinematic 4K", "Film noir"},
		Ambiance:          []string{"Epic"},
		Lighting:          []string{"Moonlight"},
		Duration:          "5 seconds",
		Format:            "16:9 Landscape",
		Resolution:        "4K UHD",
		FPS:               "24fps (Cinema)",
		MovementIntensity: intPtr(6),
		DepthOfField:      intPtr(7),
		AudioDescription:  "thunder",
	})

	want := "Generate a professional video generation prompt for:\n" +
		"**Video Model:** VEO\n" +
		"**User Input:** a lighthouse in a storm\n\n" +
		"**Visual Style:** Cinematic 4K, Film noir\n" +
		"**Mood & Ambiance:** Epic\n" +
		"**Lighting:** Moonlight\n\n" +
		"**Technical Parameters:**\n" +
		"- Duration: 5 seconds\n" +
		"- Format: 16:9 Landscape\n" +
		"- Resolution: 4K UHD\n" +
		"- Frame Rate: 24fps (Cinema)\n" +
		"- Movement Intensity: 6/10\n" +
		"- Depth of Field: 7/10\n\n" +
		"**Audio Description:** thunder"
	assert.Equal(t, want, chat.User)
	assert.Equal(t, VideoSystem, chat.System)
	assert.Equal(t, float32(0.7), chat.Temperature)
	assert.Equal(t, int32(4000), chat.MaxTokens)
}

func TestVideoMultiplan(t *testing.T) {
	chat := Video(model.GenerateRequest{
		UserInput: "chase",
		Model:     "KLING",
		Multiplan: true,
		MultiplanShots: []model.ShotPayload{
			{Duration: "3 seconds", Description: "alley"},
			{Duration: "5 seconds"},
		},
		StartFrameDescription: "dusk",
	})
	assert.Equal(t, MultiplanSystem, chat.System)
	assert.Contains(t, chat.User, "**Start Frame:** dusk")
	assert.Contains(t, chat.User, "**MULTIPLAN SEQUENCE — 2 PLANS:**")
	assert.Contains(t, chat.User, "### PLAN 1\n- **Duration:** 3 seconds\n- **Description:** alley")
	assert.Contains(t, chat.User, "### PLAN 2\n- **Duration:** 5 seconds\n- **Description:** Develop this shot")
	assert.NotContains(t, chat.User, "Technical Parameters")
}

func TestAnalysis(t *testing.T) {
	text := Analysis(model.AnalyzeImageRequest{TargetModel: "KLING", CustomInstructions: "slow motion"})
	assert.True(t, strings.HasPrefix(text, ImageAnalysis))
	assert.True(t, strings.HasSuffix(text, "\n\n**Target Video Model:** KLING\n\n**Custom Instructions:** slow motion"))
	assert.Equal(t, ImageAnalysis, Analysis(model.AnalyzeImageRequest{}))
}

func TestImage(t *testing.T) {
	chat := Image(model.GenerateImageRequest{UserInput: "fox", AspectRatio: "16:9", NegativePrompt: "blur"})
	assert.Equal(t, ImageCreateSystem, chat.System)
	assert.Equal(t, "Create an image prompt for:\n**User Input:** fox\n**Model:** default\n**Aspect Ratio:** 16:9\n**Avoid:** blur", chat.User)
	assert.Equal(t, int32(2000), chat.MaxTokens)

	chat = Image(model.GenerateImageRequest{UserInput: "fox", Mode: model.ImageModeTransform, Model: "nano-banana-pro"})
	assert.Equal(t, ImageTransformSystem, chat.System)
	assert.Contains(t, chat.User, "**Model:** nano-banana-pro")
}

func TestSizeFor(t *testing.T) {
	cases := map[string]string{
		"1:1": "1024x1024", "16:9": "1344x768", "9:16": "768x1344",
		"4:3": "1152x864", "3:4": "864x1152", "21:9": "1440x720",
		"": "1024x1024", "5:4": "1024x1024",
	}
	for in, want := range cases {
		assert.Equal(t, want, SizeFor(in).String(), in)
	}
	assert.Equal(t, "1:1", AspectRatioFor("5:4"))
	assert.Equal(t, "21:9", AspectRatioFor("21:9"))
}
