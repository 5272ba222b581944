// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/poiesic/viralscope/ai"
	"github.com/poiesic/viralscope/ai/openrouter"
	"github.com/poiesic/viralscope/config"
	"github.com/poiesic/viralscope/core"
	"github.com/poiesic/viralscope/discovery"
	"github.com/poiesic/viralscope/discovery/apify"
	"github.com/poiesic/viralscope/discovery/serper"
	"github.com/poiesic/viralscope/search"
	"github.com/poiesic/viralscope/server"
	"github.com/poiesic/viralscope/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "viralscope",
		Usage: "Viral social media content search and scoring",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the REST API server",
				Action: serveCommand,
			},
			{
				Name:      "search",
				Usage:     "Run a one-off viral content search and print the results",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max-images",
						Usage: "Maximum number of images to return (1-50)",
						Value: core.DefaultMaxImages,
					},
					&cli.IntFlag{
						Name:  "min-engagement",
						Usage: "Minimum engagement score for accepted images",
					},
					&cli.StringSliceFlag{
						Name:  "platform",
						Usage: "Platform to search (instagram, facebook); repeatable",
					},
				},
			},
			{
				Name:   "searches",
				Usage:  "List recent searches",
				Action: searchesCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of searches to list",
						Value: core.DefaultRecentLimit,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// application bundles everything a command needs, with a single teardown.
type application struct {
	cfg          *config.Config
	backend      *badger.Backend
	searchRepo   *badger.SearchRepository
	imageRepo    *badger.ImageRepository
	orchestrator *search.Orchestrator
}

func (a *application) close() {
	if a.orchestrator != nil {
		a.orchestrator.Release()
	}
	if a.imageRepo != nil {
		a.imageRepo.Close()
	}
	if a.searchRepo != nil {
		a.searchRepo.Close()
	}
	if a.backend != nil {
		a.backend.Close()
	}
}

func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	app := &application{cfg: cfg}

	app.backend, err = badger.OpenBackend(cfg.Database.Path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	app.searchRepo, err = badger.NewSearchRepository(app.backend)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("failed to create search repository: %w", err)
	}

	app.imageRepo, err = badger.NewImageRepository(app.backend)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("failed to create image repository: %w", err)
	}

	serperClient := serper.NewClient(serper.Config{
		APIKey:            cfg.Serper.APIKey,
		RequestsPerSecond: cfg.Serper.RequestsPerSecond,
		BurstLimit:        cfg.Serper.BurstLimit,
	})
	apifyClient := apify.NewClient(apify.Config{Token: cfg.Apify.Token})

	instagram, err := discovery.NewInstagramSource(apifyClient, serperClient)
	if err != nil {
		app.close()
		return nil, err
	}
	facebook, err := discovery.NewFacebookSource(serperClient)
	if err != nil {
		app.close()
		return nil, err
	}
	sources := map[core.Platform]discovery.Source{
		core.PlatformInstagram: instagram,
		core.PlatformFacebook:  facebook,
	}

	analyzer, err := openrouter.NewAnalyzer(ai.NewConfig(
		ai.WithHost(cfg.AI.Host),
		ai.WithModel(cfg.AI.Model),
		ai.WithAPIKey(cfg.AI.APIKey),
		ai.WithMaxTokens(cfg.AI.MaxTokens),
		ai.WithTemperature(cfg.AI.Temperature),
	))
	if err != nil {
		app.close()
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}

	app.orchestrator, err = search.NewOrchestrator(
		app.searchRepo, app.imageRepo, sources, analyzer,
		search.WithPoolSize(cfg.Search.PoolSize),
	)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}

	return app, nil
}

func serveCommand(c *cli.Context) error {
	app, err := newApplication()
	if err != nil {
		return err
	}
	defer app.close()

	srv := server.NewServer(app.cfg.Server.Port, app.orchestrator)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "port", app.cfg.Server.Port)
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Stop(shutdownCtx)
	}
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(c.Args().First())
	if query == "" {
		return fmt.Errorf("a search query is required")
	}

	app, err := newApplication()
	if err != nil {
		return err
	}
	defer app.close()

	platforms := make([]core.Platform, 0, 2)
	for _, p := range c.StringSlice("platform") {
		platforms = append(platforms, core.Platform(p))
	}

	results, err := app.orchestrator.Run(context.Background(), &core.SearchRequest{
		Query:         query,
		MaxImages:     c.Int("max-images"),
		MinEngagement: c.Int("min-engagement"),
		Platforms:     platforms,
	})
	if err != nil {
		return err
	}

	return printJSON(results)
}

func searchesCommand(c *cli.Context) error {
	app, err := newApplication()
	if err != nil {
		return err
	}
	defer app.close()

	records, err := app.orchestrator.Recent(context.Background(), c.Int("limit"))
	if err != nil {
		return err
	}

	return printJSON(map[string]any{"searches": records})
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
