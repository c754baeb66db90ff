package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"director/server/internal/export"
	"director/server/internal/studio"

	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse and manage generated prompts",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List history entries, newest first",
			RunE: func(*cobra.Command, []string) error {
				tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tWHEN\tMODEL\tINPUT")
				for _, e := range a.session.History() {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Timestamp.Local().Format(time.DateTime), e.Model, truncate(e.UserInput, 60))
				}
				return tw.Flush()
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Print one entry as markdown",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				e, ok := a.session.FindHistoryEntry(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", studio.ErrEntryNotFound, args[0])
				}
				_, err := io.WriteString(a.out, export.Markdown(e))
				return err
			},
		},
		&cobra.Command{
			Use:   "load <id>",
			Short: "Restore an entry into the composer",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd.Context(), func(ctx context.Context) error {
					if _, err := a.session.LoadFromHistory(args[0]); err != nil {
						return err
					}
					return a.session.SaveComposer(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete one entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd.Context(), func(ctx context.Context) error {
					return a.session.DeleteHistoryEntry(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every entry",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd.Context(), a.session.ClearHistory)
			},
		},
		newHistoryExportCmd(a),
	)
	return cmd
}

func newHistoryExportCmd(a *app) *cobra.Command {
	var (
		asHTML bool
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export an entry as text or HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			e, ok := a.session.FindHistoryEntry(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", studio.ErrEntryNotFound, args[0])
			}
			content := export.Text(e.Analysis, e.GeneratedPrompt)
			name := export.FileName(time.Now())
			if asHTML {
				page, err := a.session.ExportHTML(e.ID)
				if err != nil {
					return err
				}
				content = page
				name = strings.TrimSuffix(name, ".txt") + ".html"
			}
			if out == "" {
				out = name
			}
			if out == "-" {
				_, err := io.WriteString(a.out, content)
				return err
			}
			if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
				return err
			}
			fmt.Fprintln(a.out, out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "write an HTML page instead of plain text")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout")
	return cmd
}

func newImageHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "image-history",
		Short: "List image analyses, newest first",
		RunE: func(*cobra.Command, []string) error {
			for _, e := range a.session.ImageHistory() {
				fmt.Fprintf(a.out, "%s  %s\n%s\n\n", e.ID, e.Timestamp.Local().Format(time.DateTime), e.Analysis)
			}
			return nil
		},
	}
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
