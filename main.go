package main

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/grocky/frame-splitter/internal/logging"
)

// Version is the version of the build
var Version = "dev"

func main() {
	app := &cli.App{
		Name:    "frame-splitter",
		Usage:   "write every frame of every video under a directory as a JPEG image",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file with input_dir, output_dir and log_level",
			},
			&cli.StringFlag{
				Name:    "input-dir",
				Aliases: []string{"i"},
				Usage:   "the directory to scan for videos",
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "the existing directory to place frames in",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Action: extractAction,
	}

	// the zap logger is built inside the action from the loaded config;
	// errors before that point (flag parsing) go to the standard logger
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func extractAction(c *cli.Context) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cli.Exit("load .env: "+err.Error(), 2)
	}

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	applyFlags(c, &cfg)
	if err := cfg.validate(); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := newExtractor(cfg, logger).run(ctx, cfg.InputDir); err != nil {
		logger.Error("Extraction aborted", zap.Error(err))
		return cli.Exit("", 1)
	}
	return nil
}

func applyFlags(c *cli.Context, cfg *Config) {
	if c.IsSet("input-dir") {
		cfg.InputDir = c.String("input-dir")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
}
