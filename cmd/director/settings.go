package main

import (
	"context"
	"fmt"

	"director/server/internal/i18n"
	"director/server/internal/model"

	"github.com/spf13/cobra"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the saved settings",
	}

	var next model.AppSettings
	set := &cobra.Command{
		Use:   "set",
		Short: "Change settings; flags not given keep their value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cur := a.session.Settings()
			fl := cmd.Flags()
			if fl.Changed("default-model") {
				if _, ok := model.FindVideoModel(next.DefaultModel); !ok {
					return fmt.Errorf("unknown model %q", next.DefaultModel)
				}
				cur.DefaultModel = next.DefaultModel
			}
			if fl.Changed("dark-mode") {
				cur.DarkMode = next.DarkMode
			}
			if fl.Changed("auto-save") {
				cur.AutoSave = next.AutoSave
			}
			return a.run(cmd.Context(), func(ctx context.Context) error {
				saved, err := a.session.UpdateSettings(ctx, cur)
				if err == nil {
					printSettings(a, saved)
				}
				return err
			})
		},
	}
	set.Flags().StringVar(&next.DefaultModel, "default-model", "", "video model preselected in new sessions")
	set.Flags().BoolVar(&next.DarkMode, "dark-mode", true, "dark theme")
	set.Flags().BoolVar(&next.AutoSave, "auto-save", true, "save generations automatically")

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the saved settings",
		RunE: func(*cobra.Command, []string) error {
			printSettings(a, a.session.Settings())
			return nil
		},
	}, set)
	return cmd
}

func printSettings(a *app, s model.AppSettings) {
	fmt.Fprintf(a.out, "default-model  %s\ndark-mode      %t\nauto-save      %t\nlanguage       %s\n",
		s.DefaultModel, s.DarkMode, s.AutoSave, a.session.Lang().Language())
}

func newLangCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lang",
		Short: "Show or switch the interface language",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the active language",
			RunE: func(*cobra.Command, []string) error {
				fmt.Fprintln(a.out, a.session.Lang().Language())
				return nil
			},
		},
		&cobra.Command{
			Use:       "set <fr|en>",
			Short:     "Switch and persist the language",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(i18n.French), string(i18n.English)},
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.session.SetLanguage(cmd.Context(), i18n.Language(args[0])); err != nil {
					return err
				}
				fmt.Fprintln(a.out, a.session.Lang().Language())
				return nil
			},
		},
	)
	return cmd
}
