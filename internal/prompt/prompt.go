// Package prompt builds the instruction text sent to the provider for each
// backend route.
package prompt

import (
	"fmt"
	"strings"

	"director/server/internal/model"
)

const (
	Temperature    = 0.7
	VideoMaxTokens = 4000
	ImageMaxTokens = 2000
)

type Chat struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int32
}

// Video builds the /generate conversation. The multi-shot system prompt and
// plan blocks are used when the request flag is set.
func Video(req model.GenerateRequest) Chat {
	var b strings.Builder
	b.WriteString("Generate a professional video generation prompt for:")
	fmt.Fprintf(&b, "\n**Video Model:** %s", req.Model)
	fmt.Fprintf(&b, "\n**User Input:** %s", req.UserInput)
	if req.StartFrameDescription != "" {
		fmt.Fprintf(&b, "\n**Start Frame:** %s", req.StartFrameDescription)
	}
	if req.EndFrameDescription != "" {
		fmt.Fprintf(&b, "\n**End Frame:** %s", req.EndFrameDescription)
	}

	if req.Multiplan && len(req.MultiplanShots) > 0 {
		fmt.Fprintf(&b, "\n\n**MULTIPLAN SEQUENCE — %d PLANS:**", len(req.MultiplanShots))
		for i, shot := range req.MultiplanShots {
			desc := shot.Description
			if desc == "" {
				desc = "Develop this shot"
			}
			fmt.Fprintf(&b, "\n\n### PLAN %d", i+1)
			fmt.Fprintf(&b, "\n- **Duration:** %s", shot.Duration)
			fmt.Fprintf(&b, "\n- **Description:** %s", desc)
		}
	}

	if len(req.StyleVisuel) > 0 {
		fmt.Fprintf(&b, "\n\n**Visual Style:** %s", strings.Join(req.StyleVisuel, ", "))
	}
	labeled(&b, "Mood & Ambiance", req.Ambiance)
	labeled(&b, "Camera Work", req.CameraMovement)
	labeled(&b, "Lighting", req.Lighting)
	labeled(&b, "Color Palette", req.ColorPalette)

	if req.Duration != "" {
		b.WriteString("\n\n**Technical Parameters:**")
		fmt.Fprintf(&b, "\n- Duration: %s", req.Duration)
		if req.Format != "" {
			fmt.Fprintf(&b, "\n- Format: %s", req.Format)
		}
		if req.Resolution != "" {
			fmt.Fprintf(&b, "\n- Resolution: %s", req.Resolution)
		}
		if req.FPS != "" {
			fmt.Fprintf(&b, "\n- Frame Rate: %s", req.FPS)
		}
		if req.MovementIntensity != nil {
			fmt.Fprintf(&b, "\n- Movement Intensity: %d/10", *req.MovementIntensity)
		}
		if req.DepthOfField != nil {
			fmt.Fprintf(&b, "\n- Depth of Field: %d/10", *req.DepthOfField)
		}
	}

	if req.AudioDescription != "" {
		fmt.Fprintf(&b, "\n\n**Audio Description:** %s", req.AudioDescription)
	}
	if req.AdditionalContext != "" {
		fmt.Fprintf(&b, "\n\n**Additional Context:** %s", req.AdditionalContext)
	}

	system := VideoSystem
	if req.Multiplan {
		system = MultiplanSystem
	}
	return Chat{System: system, User: b.String(), Temperature: Temperature, MaxTokens: VideoMaxTokens}
}

func labeled(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n**%s:** %s", label, strings.Join(items, ", "))
}

// Analysis builds the text part of the /analyze-image vision request.
func Analysis(req model.AnalyzeImageRequest) string {
	var b strings.Builder
	b.WriteString(ImageAnalysis)
	if req.TargetModel != "" {
		fmt.Fprintf(&b, "\n\n**Target Video Model:** %s", req.TargetModel)
	}
	if req.CustomInstructions != "" {
		fmt.Fprintf(&b, "\n\n**Custom Instructions:** %s", req.CustomInstructions)
	}
	return b.String()
}

// Image builds the /generate-image conversation.
func Image(req model.GenerateImageRequest) Chat {
	modelID := req.Model
	if modelID == "" {
		modelID = model.DefaultImageModel
	}
	var b strings.Builder
	b.WriteString("Create an image prompt for:")
	fmt.Fprintf(&b, "\n**User Input:** %s", req.UserInput)
	fmt.Fprintf(&b, "\n**Model:** %s", modelID)
	if req.Style != "" {
		fmt.Fprintf(&b, "\n**Style:** %s", req.Style)
	}
	if req.AspectRatio != "" {
		fmt.Fprintf(&b, "\n**Aspect Ratio:** %s", req.AspectRatio)
	}
	if req.Quality != "" {
		fmt.Fprintf(&b, "\n**Quality:** %s", req.Quality)
	}
	if req.NegativePrompt != "" {
		fmt.Fprintf(&b, "\n**Avoid:** %s", req.NegativePrompt)
	}

	system := ImageCreateSystem
	if req.Mode == model.ImageModeTransform {
		system = ImageTransformSystem
	}
	return Chat{System: system, User: b.String(), Temperature: Temperature, MaxTokens: ImageMaxTokens}
}

type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

var sizes = map[string]Size{
	"1:1":  {1024, 1024},
	"16:9": {1344, 768},
	"9:16": {768, 1344},
	"4:3":  {1152, 864},
	"3:4":  {864, 1152},
	"21:9": {1440, 720},
}

// SizeFor maps an aspect ratio to the pixel preset; unknown ratios are square.
func SizeFor(aspectRatio string) Size {
	if s, ok := sizes[aspectRatio]; ok {
		return s
	}
	return sizes["1:1"]
}

// AspectRatioFor returns aspectRatio when it has a preset, 1:1 otherwise.
func AspectRatioFor(aspectRatio string) string {
	if _, ok := sizes[aspectRatio]; ok {
		return aspectRatio
	}
	return "1:1"
}
