package composer

import (
	"strings"

	"director/server/internal/i18n"
	"director/server/internal/model"
)

// BuildRequestPayload maps the composer state to the /api/generate body.
// Option keys are replaced by their labels in the translator's language;
// keys outside a vocabulary are dropped (tags) or replaced by the default
// (single choice).
func BuildRequestPayload(state model.ComposerState, tr i18n.Translator) model.GenerateRequest {
	multiplan := MultiplanActive(state)
	duration := model.Durations.Normalize(state.Duration)

	req := model.GenerateRequest{
		UserInput:         state.UserInput,
		Model:             model.VideoModelName(state.Model),
		Multiplan:         multiplan,
		StyleVisuel:       labels(tr, model.Styles, state.Styles),
		Ambiance:          labels(tr, model.Moods, state.Moods),
		CameraMovement:    labels(tr, model.CameraMovements, state.Cameras),
		Lighting:          labels(tr, model.LightingOptions, state.Lighting),
		Duration:          tr.T(duration),
		Format:            tr.T(model.Formats.Normalize(state.Format)),
		Resolution:        tr.T(model.Resolutions.Normalize(state.Resolution)),
		FPS:               tr.T(model.FrameRates.Normalize(state.FPS)),
		MovementIntensity: intPtr(model.ClampSlider(state.MovementIntensity)),
		DepthOfField:      intPtr(model.ClampSlider(state.DepthOfField)),
		AdditionalContext: strings.TrimSpace(state.AdditionalContext),
		ColorPalette:      known(model.ColorSwatches, state.ColorPalette),
	}

	if multiplan {
		for _, shot := range state.Shots {
			d := duration
			if model.Durations.Has(shot.Duration) {
				d = shot.Duration
			}
			req.MultiplanShots = append(req.MultiplanShots, model.ShotPayload{
				Duration:    tr.T(d),
				Description: shot.Description,
			})
		}
	}
	if s := strings.TrimSpace(state.StartFrameDescription); s != "" {
		req.StartFrameDescription = s
	}
	if s := strings.TrimSpace(state.EndFrameDescription); s != "" {
		req.EndFrameDescription = s
	}
	if model.SupportsAudio(state.Model) {
		req.AudioDescription = strings.TrimSpace(state.AudioDescription)
	}
	return req
}

func known(v model.Vocabulary, keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if v.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

func labels(tr i18n.Translator, v model.Vocabulary, keys []string) []string {
	out := known(v, keys)
	for i, k := range out {
		out[i] = tr.T(k)
	}
	return out
}

func intPtr(v int) *int { return &v }

// ImageOptions is the state of the image generator tab.
type ImageOptions struct {
	Mode           model.ImageMode
	UserInput      string
	Model          string
	Style          string
	AspectRatio    string
	Quality        string
	NegativePrompt string
}

func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		Mode:        model.ImageModeCreate,
		Model:       "nano-banana-pro",
		AspectRatio: "1:1",
		Quality:     "high",
	}
}

// BuildImagePayload maps the image generator tab to the /api/generate-image body.
func BuildImagePayload(opts ImageOptions) model.GenerateImageRequest {
	mode := opts.Mode
	if mode != model.ImageModeTransform {
		mode = model.ImageModeCreate
	}
	return model.GenerateImageRequest{
		Mode:           mode,
		UserInput:      opts.UserInput,
		Model:          strings.TrimSpace(opts.Model),
		Style:          strings.TrimSpace(opts.Style),
		AspectRatio:    strings.TrimSpace(opts.AspectRatio),
		Quality:        strings.TrimSpace(opts.Quality),
		NegativePrompt: strings.TrimSpace(opts.NegativePrompt),
	}
}
