package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"director/server/internal/composer"
	"director/server/internal/model"
	"director/server/internal/studio"

	"github.com/spf13/cobra"
)

type composerFlags struct {
	input      string
	model      string
	styles     []string
	moods      []string
	cameras    []string
	lighting   []string
	duration   string
	format     string
	resolution string
	fps        string
	movement   int
	dof        int
	multiplan  bool
	shots      []string
	startFrame string
	endFrame   string
	audio      string
	extra      string
	colors     []string
	reset      bool
	out        string
}

func newGenerateCmd(a *app) *cobra.Command {
	var f composerFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a video prompt from the composer",
		Long: `Applies the given flags to the saved composer, saves it, and sends it to
the backend. Flags that are not given keep their saved value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyComposerFlags(cmd, a.session, f); err != nil {
				return err
			}
			if err := a.session.SaveComposer(cmd.Context()); err != nil {
				a.log.Warn("composer_save_failed", "error", err)
			}

			var res studio.GenerateResult
			err := a.run(cmd.Context(), func(ctx context.Context) error {
				var err error
				res, err = a.session.Generate(ctx)
				return err
			})
			if err != nil {
				return err
			}

			if res.Analysis != "" {
				fmt.Fprintf(a.out, "%s\n\n", res.Analysis)
			}
			fmt.Fprintln(a.out, res.Prompt)
			if f.out != "" {
				_, content := a.session.DownloadText()
				return os.WriteFile(f.out, []byte(content), 0o644)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "scene description")
	fl.StringVarP(&f.model, "model", "m", "", "target video model (veo, seedance, kling, higgsfield)")
	fl.StringSliceVar(&f.styles, "styles", nil, "visual style keys")
	fl.StringSliceVar(&f.moods, "moods", nil, "mood keys")
	fl.StringSliceVar(&f.cameras, "cameras", nil, "camera movement keys")
	fl.StringSliceVar(&f.lighting, "lighting", nil, "lighting keys")
	fl.StringVar(&f.duration, "duration", "", "duration key")
	fl.StringVar(&f.format, "format", "", "format key")
	fl.StringVar(&f.resolution, "resolution", "", "resolution key")
	fl.StringVar(&f.fps, "fps", "", "frame rate key")
	fl.IntVar(&f.movement, "movement", model.DefaultMovementIntensity, "movement intensity, 0 to 10")
	fl.IntVar(&f.dof, "dof", model.DefaultDepthOfField, "depth of field, 0 to 10")
	fl.BoolVar(&f.multiplan, "multiplan", false, "multi-shot sequence (kling and higgsfield)")
	fl.StringArrayVar(&f.shots, "shot", nil, "shot as [durationKey:]description, repeatable; replaces the saved shots")
	fl.StringVar(&f.startFrame, "start-frame", "", "start frame description")
	fl.StringVar(&f.endFrame, "end-frame", "", "end frame description")
	fl.StringVar(&f.audio, "audio", "", "audio description (veo)")
	fl.StringVar(&f.extra, "context", "", "additional context")
	fl.StringSliceVar(&f.colors, "colors", nil, "palette swatches, e.g. #1a1a2e")
	fl.BoolVar(&f.reset, "reset", false, "start from the default composer")
	fl.StringVarP(&f.out, "out", "o", "", "also write the text export to this file")
	return cmd
}

func applyComposerFlags(cmd *cobra.Command, s *studio.Session, f composerFlags) error {
	changed := cmd.Flags().Changed
	checks := []struct {
		flag  string
		vocab model.Vocabulary
		keys  []string
	}{
		{"styles", model.Styles, f.styles},
		{"moods", model.Moods, f.moods},
		{"cameras", model.CameraMovements, f.cameras},
		{"lighting", model.LightingOptions, f.lighting},
		{"colors", model.ColorSwatches, f.colors},
		{"duration", model.Durations, []string{f.duration}},
		{"format", model.Formats, []string{f.format}},
		{"resolution", model.Resolutions, []string{f.resolution}},
		{"fps", model.FrameRates, []string{f.fps}},
	}
	for _, c := range checks {
		if !changed(c.flag) {
			continue
		}
		for _, k := range c.keys {
			if !c.vocab.Has(k) {
				return fmt.Errorf("unknown %s %q, expected one of %s", c.vocab.Name, k, strings.Join(c.vocab.Keys, ", "))
			}
		}
	}
	if changed("model") {
		if _, ok := model.FindVideoModel(f.model); !ok {
			return fmt.Errorf("unknown model %q", f.model)
		}
	}

	s.UpdateComposer(func(st *model.ComposerState) {
		if f.reset {
			keep := st.Model
			*st = composer.DefaultState()
			st.Model = keep
		}
		setString(changed("input"), &st.UserInput, f.input)
		setString(changed("model"), &st.Model, f.model)
		setSlice(changed("styles"), &st.Styles, f.styles)
		setSlice(changed("moods"), &st.Moods, f.moods)
		setSlice(changed("cameras"), &st.Cameras, f.cameras)
		setSlice(changed("lighting"), &st.Lighting, f.lighting)
		setSlice(changed("colors"), &st.ColorPalette, f.colors)
		setString(changed("duration"), &st.Duration, f.duration)
		setString(changed("format"), &st.Format, f.format)
		setString(changed("resolution"), &st.Resolution, f.resolution)
		setString(changed("fps"), &st.FPS, f.fps)
		setString(changed("start-frame"), &st.StartFrameDescription, f.startFrame)
		setString(changed("end-frame"), &st.EndFrameDescription, f.endFrame)
		setString(changed("audio"), &st.AudioDescription, f.audio)
		setString(changed("context"), &st.AdditionalContext, f.extra)
		if changed("movement") {
			st.MovementIntensity = model.ClampSlider(f.movement)
		}
		if changed("dof") {
			st.DepthOfField = model.ClampSlider(f.dof)
		}
		if changed("multiplan") {
			st.MultiplanEnabled = f.multiplan
		}
		if changed("shot") {
			st.Shots = parseShots(f.shots, st.Duration)
		}
	})
	return nil
}

// parseShots builds a shot sequence from "duration5s:description" values.
// A value without a known duration prefix is all description.
func parseShots(values []string, defaultDuration string) []model.Shot {
	var shots []model.Shot
	for _, v := range values {
		shots = composer.AddShot(shots, defaultDuration)
		id := shots[len(shots)-1].ID
		desc := v
		if key, rest, ok := strings.Cut(v, ":"); ok && model.Durations.Has(key) {
			shots = composer.UpdateShot(id, composer.ShotDuration, key, shots)
			desc = rest
		}
		shots = composer.UpdateShot(id, composer.ShotDescription, strings.TrimSpace(desc), shots)
	}
	return shots
}

func setString(ok bool, dst *string, v string) {
	if ok {
		*dst = v
	}
}

func setSlice(ok bool, dst *[]string, v []string) {
	if ok {
		*dst = append([]string{}, v...)
	}
}
