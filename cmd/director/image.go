package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"director/server/internal/composer"
	"director/server/internal/model"
	"director/server/internal/studio"

	"github.com/spf13/cobra"
)

func newAnalyzeImageCmd(a *app) *cobra.Command {
	var in studio.AnalyzeInput
	cmd := &cobra.Command{
		Use:   "analyze-image <file>",
		Short: "Describe an image as a video prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			in.DataURI, err = studio.EncodeDataURI(args[0], data)
			if err != nil {
				return err
			}

			var entry model.ImageAnalysisEntry
			err = a.run(cmd.Context(), func(ctx context.Context) error {
				var err error
				entry, err = a.session.AnalyzeImage(ctx, in)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, entry.Analysis)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.CustomInstructions, "instructions", "", "extra instructions for the analysis")
	cmd.Flags().StringVarP(&in.TargetModel, "model", "m", "", "video model the prompt is written for")
	return cmd
}

func newGenerateImageCmd(a *app) *cobra.Command {
	var (
		opts = composer.DefaultImageOptions()
		save string
	)
	cmd := &cobra.Command{
		Use:   "generate-image",
		Short: "Generate an image prompt and, when the provider returns one, the image",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Mode = model.ImageMode(strings.ToLower(string(opts.Mode)))
			a.session.SetImageOptions(opts)

			var resp model.GenerateImageResponse
			err := a.run(cmd.Context(), func(ctx context.Context) error {
				var err error
				resp, err = a.session.GenerateImage(ctx)
				return err
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, resp.Prompt)
			if save == "" || resp.ImageURL == nil {
				return nil
			}
			_, body, err := studio.ParseDataURI(*resp.ImageURL)
			if err != nil {
				return err
			}
			img, err := base64.StdEncoding.DecodeString(body)
			if err != nil {
				return fmt.Errorf("decode image: %w", err)
			}
			if err := os.WriteFile(save, img, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "\n%s\n", save)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&opts.UserInput, "input", "i", "", "image description")
	fl.StringVar((*string)(&opts.Mode), "mode", string(opts.Mode), "create or transform")
	fl.StringVarP(&opts.Model, "model", "m", opts.Model, "image model id")
	fl.StringVar(&opts.Style, "style", "", "style hint")
	fl.StringVar(&opts.AspectRatio, "aspect-ratio", opts.AspectRatio, "1:1, 16:9, 9:16, 4:3 or 3:4")
	fl.StringVar(&opts.Quality, "quality", opts.Quality, "quality hint")
	fl.StringVar(&opts.NegativePrompt, "negative", "", "what to avoid")
	fl.StringVarP(&save, "save", "o", "", "write the generated image to this file")
	return cmd
}

func newModelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the image models the backend offers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			models, err := a.client.ImageModels(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range models {
				fmt.Fprintf(a.out, "%s\t%s\n", m.ID, m.Name)
			}
			return nil
		},
	}
}
