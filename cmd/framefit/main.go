// Package main provides the CLI entry point for framefit.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/framefit/pkg/adapters/ggrasterizer"
	"github.com/user/framefit/pkg/adapters/imagecodec"
	"github.com/user/framefit/pkg/adapters/logger"
	"github.com/user/framefit/pkg/adapters/osfilesystem"
	"github.com/user/framefit/pkg/config"
	"github.com/user/framefit/pkg/orchestrator"
	"github.com/user/framefit/pkg/ports"
	"github.com/user/framefit/pkg/stages/compose"
	"github.com/user/framefit/pkg/stages/encode"
	"github.com/user/framefit/pkg/stages/placement"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:      "framefit",
		Usage:     l10n.T("Fit an image into a fixed-size frame and re-encode it"),
		Version:   version,
		ArgsUsage: "<image>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("Path to a yaml config file with default settings"),
			},
			&cli.StringFlag{
				Name:    "preset",
				Aliases: []string{"p"},
				Usage:   l10n.T("Target resolution preset (4k, 2k, 1080p, 720p, custom)"),
			},
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"W"},
				Usage:   l10n.T("Custom target width in pixels (implies a custom preset)"),
			},
			&cli.IntFlag{
				Name:    "height",
				Aliases: []string{"H"},
				Usage:   l10n.T("Custom target height in pixels (implies a custom preset)"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   l10n.T("Output format (png, jpeg, webp)"),
			},
			&cli.Float64Flag{
				Name:    "quality",
				Aliases: []string{"q"},
				Value:   -1,
				Usage:   l10n.T("Encoding quality between 0 and 1 (ignored for png)"),
			},
			&cli.StringFlag{
				Name:  "fit",
				Usage: l10n.T("Fit mode (contain, cover, stretch)"),
			},
			&cli.StringFlag{
				Name:    "background",
				Aliases: []string{"b"},
				Usage:   l10n.T("Background fill: transparent or a hex color like #1a1a2e"),
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   l10n.T("Directory for the output file (default: next to the input)"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.ShowAppHelp(c)
	}
	inputPath := c.Args().First()

	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	settings, err := cfg.ToSettings()
	if err != nil {
		return err
	}

	// Cancel the in-flight invocation on SIGINT/SIGTERM; its result is
	// simply discarded.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	fs := osfilesystem.New()
	processor := orchestrator.New(
		imagecodec.NewDecoder(),
		placement.NewStage(),
		compose.NewStage(ggrasterizer.New(), log),
		encode.NewStage(imagecodec.NewEncoder(), log),
		log,
	)

	data, err := fs.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	result, err := processor.Process(ctx, orchestrator.ProcessInput{
		Data:     data,
		Filename: inputPath,
		Settings: settings,
	})
	if err != nil {
		return err
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}
	outputPath := filepath.Join(outputDir, result.Filename)
	if err := fs.WriteFile(outputPath, result.Data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info(l10n.F("Output saved to %s", outputPath))
	return nil
}

// buildConfig loads the config file (when given) and applies CLI overrides.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("preset") {
		cfg.Preset = c.String("preset")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if q := c.Float64("quality"); q >= 0 {
		cfg.Quality = q
	}
	if c.IsSet("fit") {
		cfg.Fit = c.String("fit")
	}
	if c.IsSet("background") {
		cfg.Background = c.String("background")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	return cfg, nil
}
