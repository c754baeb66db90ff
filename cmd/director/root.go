package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"director/server/internal/apiclient"
	"director/server/internal/config"
	"director/server/internal/httpclient"
	"director/server/internal/i18n"
	"director/server/internal/model"
	"director/server/internal/store"
	"director/server/internal/studio"
	"director/server/internal/telemetry"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type rootOptions struct {
	apiURL   string
	storeURL string
	lang     string
	logLevel string
}

type app struct {
	cfg     config.Config
	log     *slog.Logger
	kv      store.KV
	client  *apiclient.Client
	session *studio.Session
	out     io.Writer
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := rootOptions{
		apiURL:   cfg.APIURL,
		storeURL: cfg.StoreURL,
		logLevel: "warn",
	}
	a := &app{}

	root := &cobra.Command{
		Use:           "director",
		Short:         "Compose cinematic video and image prompts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg.APIURL = opts.apiURL
			cfg.StoreURL = opts.storeURL
			return a.init(cmd.Context(), cfg, opts, cmd.OutOrStdout())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", opts.apiURL, "backend base URL")
	root.PersistentFlags().StringVar(&opts.storeURL, "store", opts.storeURL, "state store: directory, file://, redis:// or memory:")
	root.PersistentFlags().StringVar(&opts.lang, "lang", "", "switch the interface language (fr, en)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "debug, info, warn or error")

	root.AddCommand(
		newGenerateCmd(a),
		newAnalyzeImageCmd(a),
		newGenerateImageCmd(a),
		newModelsCmd(a),
		newHistoryCmd(a),
		newImageHistoryCmd(a),
		newSettingsCmd(a),
		newLangCmd(a),
	)
	return root
}

func (a *app) init(ctx context.Context, cfg config.Config, opts rootOptions, out io.Writer) error {
	a.cfg = cfg
	a.out = out
	a.log = telemetry.NewCLILogger(opts.logLevel)

	kv, err := store.Open(ctx, cfg.StoreURL)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.kv = kv

	lang := i18n.NewContext(ctx, kv, i18n.SystemLocale())
	if opts.lang != "" {
		if err := lang.SetLanguage(ctx, i18n.Language(opts.lang)); err != nil {
			return err
		}
	}

	a.client = apiclient.New(apiclient.Options{
		BaseURL: cfg.APIURL,
		HTTPClient: httpclient.New(httpclient.Options{
			PreferIPv4: cfg.PreferIPv4,
			Timeout:    cfg.RequestTimeout,
		}),
		Logger: a.log,
	})
	a.session = studio.New(ctx, studio.Options{
		API:    a.client,
		KV:     kv,
		Lang:   lang,
		Logger: a.log,
	})
	return nil
}

func (a *app) close() error {
	if c, ok := a.kv.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// run executes fn while printing the session's notifications to stderr.
func (a *app) run(ctx context.Context, fn func(context.Context) error) error {
	_, ch, unsubscribe := a.session.Notifier().Subscribe(16)

	var g errgroup.Group
	g.Go(func() error {
		for n := range ch {
			printNotification(os.Stderr, n)
		}
		return nil
	})

	err := fn(ctx)
	unsubscribe()
	_ = g.Wait()
	return err
}

func printNotification(w io.Writer, n model.Notification) {
	mark := "✓"
	if n.Level == model.NotifyError {
		mark = "✗"
	}
	if n.Description == "" {
		fmt.Fprintf(w, "%s %s\n", mark, n.Title)
		return
	}
	fmt.Fprintf(w, "%s %s: %s\n", mark, n.Title, n.Description)
}
