// Package studypicks wires the studypicks command line.
package studypicks

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/studypicks/internal/content"
	"github.com/louisbranch/studypicks/internal/page"
	platformcmd "github.com/louisbranch/studypicks/internal/platform/cmd"
	"github.com/louisbranch/studypicks/internal/services/web"
	"github.com/louisbranch/studypicks/internal/services/web/export"
	webi18n "github.com/louisbranch/studypicks/internal/services/web/platform/i18n"
	"github.com/louisbranch/studypicks/internal/services/web/preview"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewRootCommand returns the studypicks CLI rooted at cfg. Flags override
// the values already in cfg.
func NewRootCommand(cfg Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "studypicks",
		Short:         "Cambridge Study Advisor page renderer",
		Long:          "studypicks renders the AI study-app recommendation page over HTTP, as a static file, or in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	state := &cfg
	bindFlags(root, state)

	root.AddCommand(
		newServeCommand(state),
		newExportCommand(state),
		newPreviewCommand(state),
		newValidateCommand(state),
	)
	return root
}

func newServeCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd.Context(), *cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	cmd.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "Reload the content file when it changes")
	return cmd
}

func newExportCommand(cfg *Config) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the page as a static index.html",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := Export(cmd.Context(), *cfg, out)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "Output directory")
	return cmd
}

func newPreviewCommand(cfg *Config) *cobra.Command {
	var opts preview.Options
	var markdown bool
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the page in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := buildPage(*cfg)
			if err != nil {
				return err
			}
			text := preview.Markdown(p)
			if !markdown {
				text, err = preview.Render(p, opts)
				if err != nil {
					return err
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Wrap width (defaults to 80)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "Glamour style name (defaults to auto-detect)")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print raw Markdown instead of styled output")
	return cmd
}

func newValidateCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the content feed strictly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strict := *cfg
			strict.Strict = true
			feed, err := LoadFeed(strict)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "content feed ok: %s with %d contenders\n", feed.Primary.Name, len(feed.Contenders))
			return err
		},
	}
}

// Run starts the web server. With Watch set and a content file configured,
// the feed is reloaded whenever the file changes.
func Run(ctx context.Context, cfg Config) error {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}
	feed, err := LoadFeed(cfg)
	if err != nil {
		return err
	}
	lang, err := Language(cfg)
	if err != nil {
		return err
	}
	store := content.NewStore(feed)
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Feed:     store,
			Lang:     lang,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := server.ListenAndServe(gctx); err != nil {
				return fmt.Errorf("serve web: %w", err)
			}
			return nil
		})
		if path := strings.TrimSpace(cfg.ContentFile); cfg.Watch && path != "" {
			g.Go(func() error {
				if err := content.Watch(gctx, path, func() (content.Feed, error) { return LoadFeed(cfg) }, store); err != nil {
					return fmt.Errorf("watch content: %w", err)
				}
				return nil
			})
		}
		return g.Wait()
	})
}

// Export writes the page into dir and returns the written path.
func Export(ctx context.Context, cfg Config, dir string) (string, error) {
	p, err := buildPage(cfg)
	if err != nil {
		return "", err
	}
	var path string
	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceExport, func(ctx context.Context) error {
		written, err := export.Export(ctx, dir, p)
		if err != nil {
			return fmt.Errorf("export page: %w", err)
		}
		path = written
		return nil
	})
	if err != nil {
		return "", err
	}
	log.Printf("exported page path=%s lang=%s", path, p.Lang)
	return path, nil
}

func buildPage(cfg Config) (page.Page, error) {
	feed, err := LoadFeed(cfg)
	if err != nil {
		return page.Page{}, err
	}
	lang, err := Language(cfg)
	if err != nil {
		return page.Page{}, err
	}
	return page.Build(feed, webi18n.Page(lang)), nil
}
