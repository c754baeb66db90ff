package composer

import (
	"slices"

	"director/server/internal/model"
)

// Snapshot captures the option part of state for a history entry.
func Snapshot(state model.ComposerState) model.HistoryOptions {
	return model.HistoryOptions{
		Styles:                slices.Clone(state.Styles),
		Moods:                 slices.Clone(state.Moods),
		Cameras:               slices.Clone(state.Cameras),
		Lighting:              slices.Clone(state.Lighting),
		Duration:              state.Duration,
		Format:                state.Format,
		Resolution:            state.Resolution,
		FPS:                   state.FPS,
		MovementIntensity:     state.MovementIntensity,
		DepthOfField:          state.DepthOfField,
		Multiplan:             state.MultiplanEnabled,
		Shots:                 slices.Clone(state.Shots),
		AudioDescription:      state.AudioDescription,
		AdditionalContext:     state.AdditionalContext,
		ColorPalette:          slices.Clone(state.ColorPalette),
		StartFrameDescription: state.StartFrameDescription,
		EndFrameDescription:   state.EndFrameDescription,
	}
}

// ApplySnapshot restores a history entry into the composer. The model is
// resolved from its display name and kept as is when the name is unknown.
func ApplySnapshot(state model.ComposerState, entry model.HistoryEntry) model.ComposerState {
	opts := entry.Options
	out := state
	out.UserInput = entry.UserInput
	if m, ok := model.FindVideoModelByName(entry.Model); ok {
		out.Model = m.ID
	}
	out.Styles = known(model.Styles, opts.Styles)
	out.Moods = known(model.Moods, opts.Moods)
	out.Cameras = known(model.CameraMovements, opts.Cameras)
	out.Lighting = known(model.LightingOptions, opts.Lighting)
	out.ColorPalette = known(model.ColorSwatches, opts.ColorPalette)
	out.Duration = model.Durations.Normalize(opts.Duration)
	out.Format = model.Formats.Normalize(opts.Format)
	out.Resolution = model.Resolutions.Normalize(opts.Resolution)
	out.FPS = model.FrameRates.Normalize(opts.FPS)
	out.MovementIntensity = model.ClampSlider(opts.MovementIntensity)
	out.DepthOfField = model.ClampSlider(opts.DepthOfField)
	out.MultiplanEnabled = opts.Multiplan
	out.Shots = slices.Clone(opts.Shots)
	if len(out.Shots) == 0 {
		out.Shots = []model.Shot{newShot(out.Duration)}
	}
	out.AudioDescription = opts.AudioDescription
	out.AdditionalContext = opts.AdditionalContext
	out.StartFrameDescription = opts.StartFrameDescription
	out.EndFrameDescription = opts.EndFrameDescription
	return out
}
