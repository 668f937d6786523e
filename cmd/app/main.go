package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dinayuil/joplin-to-hexo/internal"
	pkgconfig "github.com/dinayuil/joplin-to-hexo/pkg/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()
	if path := cmd.String("config"); path != "" {
		if err := pkgconfig.Load(path, cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Flags beat the config file when given explicitly.
	if cmd.IsSet("tag") {
		cfg.Export.Tag = cmd.String("tag")
	}
	if cmd.IsSet("output") {
		cfg.Export.Output = cmd.String("output")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "joplin-to-hexo",
		Usage:  "Export Joplin notes into Hexo posts with rewritten attachment links",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "tag",
				Aliases: []string{"t"},
				Usage:   "Tag of the notes to export; use 'ALL' to export every note",
				Value:   "blog",
				Sources: cli.EnvVars("JOPLIN_EXPORT_TAG"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Base directory for the generated Hexo source files",
				Value:   "hexo_source",
				Sources: cli.EnvVars("JOPLIN_EXPORT_OUTPUT"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to an optional config file",
				Sources: cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
