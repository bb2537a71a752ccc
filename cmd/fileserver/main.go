package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/grocky/frame-splitter/internal/logging"
)

func main() {
	app := &cli.App{
		Name:  "fileserver",
		Usage: "serve extracted frames over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Usage:   "the directory to serve",
				EnvVars: []string{"OUTPUT_DIR"},
				Value:   "/pfs/out",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "the port to listen on",
				Value: 9090,
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"LOG_LEVEL"},
				Value:   "info",
			},
		},
		Action: func(c *cli.Context) error {
			logger, err := logging.New(c.String("log-level"))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			defer logger.Sync()

			dir := c.String("dir")
			port := c.Int("port")
			logger.Info("Serving frames", zap.String("dir", dir), zap.Int("port", port))
			return newServer(dir, port, logger).ListenAndServe()
		},
	}

	// the zap logger is built inside the action; errors before that point
	// (flag parsing) go to the standard logger
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
