// Package run holds the CLI actions. Each action builds its logger
// and agent from flags, runs one operation, and writes the enveloped
// result to stdout or a file.
package run

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/awesome-list-agent/internal/common"
	"github.com/dtnitsch/awesome-list-agent/pkg/agent"
	"github.com/dtnitsch/awesome-list-agent/pkg/storage"
	"github.com/dtnitsch/awesome-list-agent/pkg/tracing"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	if lvl := c.String("log-level"); lvl != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(lvl)); err == nil {
			logLevel = parsed
		}
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func buildAgent(c *cli.Context, logger *slog.Logger) (*agent.Agent, func(), error) {
	cfg := agent.Config{
		Timeout:   c.Duration("timeout"),
		MaxVideos: c.Int("max-videos"),
		Analyze:   c.Bool("analyze"),
		Logger:    logger,
	}

	cleanup := func() {}
	if dbPath := c.String("trace-db"); dbPath != "" {
		store, err := tracing.OpenStore(dbPath)
		if err != nil {
			return nil, nil, err
		}
		cfg.Sink = store
		cleanup = func() { _ = store.Close() }
	} else if !c.Bool("quiet") {
		cfg.Sink = tracing.NewLogSink(logger)
	}

	a := agent.New(cfg)
	return a, func() { a.Close(); cleanup() }, nil
}

func writeResult(c *cli.Context, url string, result any) error {
	env := NewEnvelope(url, result)
	data, err := env.Render(c.String("format"))
	if err != nil {
		return err
	}

	if out := c.String("output"); out != "" {
		s := &storage.Storage{}
		if err := s.SaveFile(out, data); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Result saved to %s\n", out)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}

func urlArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one URL argument")
	}
	return common.ValidateURL(c.Args().First())
}

// ProcessAction runs the full pipeline for one awesome-list URL.
func ProcessAction(c *cli.Context) error {
	logger := newLogger(c)

	url, err := urlArg(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	a, cleanup, err := buildAgent(c, logger)
	if err != nil {
		logger.Error("failed to initialize agent", "error", err)
		return cli.Exit("", 2)
	}
	defer cleanup()

	start := time.Now()
	logger.Info("processing awesome list", "url", url)
	result := a.Process(c.Context, url)
	logger.Info("run finished", "url", url, "status", result.Status, "duration", time.Since(start).String())

	if err := writeResult(c, url, result); err != nil {
		logger.Error("failed to write result", "error", err)
		return cli.Exit("", 2)
	}
	if result.Status != "success" {
		return cli.Exit("", 1)
	}
	return nil
}

// YouTubeAction extracts the YouTube URLs a page references, without
// the rest of the pipeline.
func YouTubeAction(c *cli.Context) error {
	logger := newLogger(c)

	url, err := urlArg(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	a, cleanup, err := buildAgent(c, logger)
	if err != nil {
		logger.Error("failed to initialize agent", "error", err)
		return cli.Exit("", 2)
	}
	defer cleanup()

	logger.Info("extracting YouTube URLs", "url", url)
	extraction := a.ExtractYouTube(c.Context, url)

	if err := writeResult(c, url, extraction); err != nil {
		logger.Error("failed to write result", "error", err)
		return cli.Exit("", 2)
	}
	if extraction.Status != "success" {
		return cli.Exit("", 1)
	}
	return nil
}
