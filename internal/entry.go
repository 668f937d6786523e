// Package internal provides the application initialization and the export
// run sequence.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dinayuil/joplin-to-hexo/internal/export"
	"github.com/dinayuil/joplin-to-hexo/internal/joplin"
	"github.com/dinayuil/joplin-to-hexo/internal/storage"
	"github.com/dinayuil/joplin-to-hexo/internal/token"
)

// Run executes one export with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	tok, err := token.Load(cfg.Joplin.TokenFile, app.stdin, app.stdout, logger)
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}

	client := joplin.NewClient(cfg.Joplin.BaseURL, tok)
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("connect to Joplin (is the Web Clipper service enabled?): %w", err)
	}
	logger.Info("connected to Joplin", slog.String("base_url", cfg.Joplin.BaseURL))

	site, err := storage.NewSite(cfg.Export.Output)
	if err != nil {
		return err
	}

	sum, err := export.New(client, site, logger).Run(ctx, cfg.Export.Tag)
	if err != nil {
		return err
	}

	logger.Info("export finished",
		slog.Int("exported", sum.Exported),
		slog.Int("skipped", sum.Skipped),
		slog.String("output", cfg.Export.Output))
	return nil
}
