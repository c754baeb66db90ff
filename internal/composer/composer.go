// Package composer holds the pure transformations behind the prompt composer.
// Every function returns a new value and leaves its arguments untouched.
package composer

import (
	"slices"

	"director/server/internal/model"

	"github.com/google/uuid"
)

type ShotField string

const (
	ShotDescription ShotField = "description"
	ShotDuration    ShotField = "duration"
)

// DefaultState is the composer as it looks on a fresh start.
func DefaultState() model.ComposerState {
	return model.ComposerState{
		Model:             model.DefaultVideoModel,
		Styles:            []string{},
		Moods:             []string{},
		Cameras:           []string{},
		Lighting:          []string{},
		Duration:          model.Durations.Default,
		Format:            model.Formats.Default,
		Resolution:        model.Resolutions.Default,
		FPS:               model.FrameRates.Default,
		MovementIntensity: model.DefaultMovementIntensity,
		DepthOfField:      model.DefaultDepthOfField,
		Shots:             []model.Shot{newShot(model.Durations.Default)},
		ColorPalette:      []string{},
	}
}

// ToggleTag adds item when absent and removes it when present.
func ToggleTag(item string, set []string) []string {
	out := make([]string, 0, len(set)+1)
	found := false
	for _, s := range set {
		if s == item {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, item)
	}
	return out
}

func newShot(duration string) model.Shot {
	return model.Shot{ID: uuid.NewString(), Duration: duration}
}

// AddShot appends an empty shot with a fresh id.
func AddShot(seq []model.Shot, defaultDuration string) []model.Shot {
	out := make([]model.Shot, 0, len(seq)+1)
	out = append(out, seq...)
	return append(out, newShot(model.Durations.Normalize(defaultDuration)))
}

// RemoveShot drops the shot with the given id. The last remaining shot is
// never removed.
func RemoveShot(id string, seq []model.Shot) []model.Shot {
	out := slices.Clone(seq)
	if len(seq) <= 1 {
		return out
	}
	return slices.DeleteFunc(out, func(s model.Shot) bool { return s.ID == id })
}

// UpdateShot replaces one field of the shot with the given id. Unknown ids,
// unknown fields and durations outside the vocabulary leave the sequence as is.
func UpdateShot(id string, field ShotField, value string, seq []model.Shot) []model.Shot {
	out := slices.Clone(seq)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		switch field {
		case ShotDescription:
			out[i].Description = value
		case ShotDuration:
			if model.Durations.Has(value) {
				out[i].Duration = value
			}
		}
	}
	return out
}

// MultiplanActive reports whether the multi-shot sequence is honored for state.
func MultiplanActive(state model.ComposerState) bool {
	return state.MultiplanEnabled && model.SupportsMultiplan(state.Model)
}
