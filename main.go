package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/awesome-list-agent/internal/run"
)

func main() {
	app := &cli.App{
		Name:  "awesome-list-agent",
		Usage: "parse awesome lists into structured metadata with learning guidance",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error",
				Value: "info",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors and skip trace logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "process",
				Usage:     "run the full pipeline for one awesome-list URL",
				ArgsUsage: "<url>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format: json or yaml",
						Value: "json",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "write the result to a file instead of stdout",
					},
					&cli.StringFlag{
						Name:  "trace-db",
						Usage: "persist traces and tool spans to this SQLite file",
					},
					&cli.IntFlag{
						Name:  "max-videos",
						Usage: "maximum YouTube videos to resolve",
						Value: 10,
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "per-request HTTP timeout",
						Value: 30 * time.Second,
					},
					&cli.BoolFlag{
						Name:  "analyze",
						Usage: "include the content analysis section",
					},
				},
				Action: run.ProcessAction,
			},
			{
				Name:      "youtube",
				Usage:     "extract the YouTube URLs a page references",
				ArgsUsage: "<url>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format: json or yaml",
						Value: "json",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "write the result to a file instead of stdout",
					},
					&cli.StringFlag{
						Name:  "trace-db",
						Usage: "persist traces and tool spans to this SQLite file",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "per-request HTTP timeout",
						Value: 30 * time.Second,
					},
				},
				Action: run.YouTubeAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			if msg := exitErr.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
