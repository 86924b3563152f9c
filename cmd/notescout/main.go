// Copyright 2025 The Notescout Authors
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
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/alloy-org/notescout"
	"github.com/alloy-org/notescout/agent"
	"github.com/alloy-org/notescout/ai"
	"github.com/alloy-org/notescout/core"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "notescout",
		Usage: "LLM-assisted search over a personal note collection",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file",
				Value:   "notescout.yaml",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search notes with a natural-language query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the note database directory",
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "Judge service host URL",
					},
					&cli.StringFlag{
						Name:  "model",
						Usage: "Judge model name (overrides the configured list)",
					},
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Usage:   "Number of results to return",
					},
					&cli.StringFlag{
						Name:  "phrase",
						Usage: "Exact phrase the notes must contain",
					},
					&cli.StringSliceFlag{
						Name:  "tag",
						Usage: "Tag the notes must carry (repeatable)",
					},
					&cli.BoolFlag{
						Name:  "publish",
						Usage: "Write the results into a summary note",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Suppress progress output",
					},
				},
			},
			{
				Name:      "seed",
				Usage:     "Create a note, reading the body from stdin",
				ArgsUsage: "<name>",
				Action:    seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the note database directory",
					},
					&cli.StringSliceFlag{
						Name:    "tag",
						Aliases: []string{"t"},
						Usage:   "Tag for the new note (repeatable)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a search query is required")
	}

	cfg, err := loadConfig(c.String("config"), c.IsSet("config"))
	if err != nil {
		return err
	}
	if c.IsSet("db") {
		cfg.DB = c.String("db")
	}
	if c.IsSet("host") {
		cfg.AI.Host = c.String("host")
	}
	if c.IsSet("model") {
		cfg.AI.Models = []string{c.String("model")}
	}

	scout, err := notescout.Open(cfg.DB, notescout.WithAIConfig(ai.NewConfig(
		ai.WithHost(cfg.AI.Host),
		ai.WithToken(cfg.AI.Token),
		ai.WithPreferredModels(cfg.AI.Models...),
		ai.WithTimeout(cfg.AI.Timeout),
	)))
	if err != nil {
		return fmt.Errorf("opening note database: %w", err)
	}
	defer scout.Close()

	opts := &agent.SearchOptions{
		PublishSummary: cfg.Search.PublishSummary || c.Bool("publish"),
	}
	if !c.Bool("quiet") {
		opts.Progress = func(message string) {
			fmt.Fprintln(os.Stderr, message)
		}
	}

	overrides := &core.CriteriaOverrides{}
	if c.IsSet("count") {
		count := c.Int("count")
		overrides.ResultCount = &count
	}
	if c.IsSet("phrase") {
		phrase := c.String("phrase")
		overrides.ExactPhrase = &phrase
	}
	if tags := c.StringSlice("tag"); len(tags) > 0 {
		overrides.MustHaveTags = tags
	}
	opts.Overrides = overrides

	result, err := scout.Search(c.Context, query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	printResult(os.Stdout, result)
	return nil
}

func printResult(w io.Writer, result *core.SearchResult) {
	fmt.Fprintln(w, result.Message)
	for _, note := range result.Notes {
		fmt.Fprintf(w, "%2d. %-40s %.1f  %s\n", note.Rank, note.Name, note.Score, note.URL)
		if note.Reasoning != "" {
			fmt.Fprintf(w, "    %s\n", note.Reasoning)
		}
	}
	if result.Suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", result.Suggestion)
	}
	if result.SummaryNote != nil {
		fmt.Fprintf(w, "Summary note: %s (%s)\n", result.SummaryNote.Name, result.SummaryNote.URL)
	}
}

func seedCommand(c *cli.Context) error {
	name := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if name == "" {
		return fmt.Errorf("a note name is required")
	}

	cfg, err := loadConfig(c.String("config"), c.IsSet("config"))
	if err != nil {
		return err
	}
	if c.IsSet("db") {
		cfg.DB = c.String("db")
	}

	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading note body: %w", err)
	}

	scout, err := notescout.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening note database: %w", err)
	}
	defer scout.Close()

	ctx := context.Background()
	store := scout.Store()
	id, err := store.CreateNote(ctx, name, c.StringSlice("tag"))
	if err != nil {
		return fmt.Errorf("creating note: %w", err)
	}
	if len(body) > 0 {
		if err := store.ReplaceNoteContent(ctx, id, string(body)); err != nil {
			return fmt.Errorf("writing note body: %w", err)
		}
	}

	fmt.Println(core.NoteURL(id))
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
