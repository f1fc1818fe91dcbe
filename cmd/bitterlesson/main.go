package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v3"

	"github.com/programme-lv/bitterlesson/internal/compare"
	"github.com/programme-lv/bitterlesson/internal/environment"
	"github.com/programme-lv/bitterlesson/internal/scenario"
	"github.com/programme-lv/bitterlesson/internal/termgath"
)

var version = "dev"

func main() {
	env := environment.ReadEnvConfig()

	cmd := &cli.Command{
		Name:    "bitterlesson",
		Usage:   "compare specialized and general problem-solving methods as computation scales",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "scenario",
				Usage: "path to a TOML scenario file (defaults to the built-in scenario)",
				Value: env.ScenarioPath,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
				Value: env.LogLevel,
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
				Value: env.NoColor,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			initLogging(c.String("log-level"))
			if c.Bool("no-color") {
				color.NoColor = true
			}

			scn := scenario.Default()
			if path := c.String("scenario"); path != "" {
				var err error
				scn, err = scenario.Parse(path)
				if err != nil {
					return fmt.Errorf("loading scenario: %w", err)
				}
			}

			_, err := compare.Run(termgath.New(os.Stdout), scn)
			return err
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func initLogging(level string) {
	lvl := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	})))
}
