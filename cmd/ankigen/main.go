// Command ankigen builds a flashcard deck from a user's solved
// coding-problem history and writes it to a single deck file.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/conorfennell/ankigen/internal/config"
	"github.com/conorfennell/ankigen/internal/deck"
	"github.com/conorfennell/ankigen/internal/domain"
	"github.com/conorfennell/ankigen/internal/listsource"
	"github.com/conorfennell/ankigen/internal/pipeline"
	"github.com/conorfennell/ankigen/internal/provider"
	"github.com/conorfennell/ankigen/internal/schema"
	"github.com/conorfennell/ankigen/internal/storage"
)

const listReposDir = "repos"

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("Deck generation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	listFilter, err := resolveListFilter(cfg)
	if err != nil {
		return err
	}

	p, err := provider.OpenExport(cfg.ExportFile, provider.Options{
		Start:          cfg.Start,
		Stop:           cfg.Stop,
		PageSize:       cfg.PageSize,
		ListFilter:     listFilter,
		Status:         cfg.ProblemStatus,
		FetchSolutions: cfg.IncludeSolutions,
	})
	if err != nil {
		return err
	}

	handles, err := p.Handles(ctx)
	if err != nil {
		return err
	}
	slog.Info("Generating flashcards", "problems", len(handles), "workers", cfg.Workers)

	progress := func(done, total int) {
		slog.Info("Processed problem", "done", done, "total", total)
	}
	records, err := pipeline.Run(ctx, p, handles, cfg.Workers, progress)
	if err != nil {
		return err
	}
	slog.Info("Flashcards built", "cards", len(records), "skipped", len(handles)-len(records))

	name := strings.TrimSuffix(filepath.Base(cfg.OutputFile), filepath.Ext(cfg.OutputFile))
	d := deck.Assemble(schema.DeckID, name, records)

	if err := storage.WriteDeck(cfg.OutputFile, schema.Default(), d); err != nil {
		return err
	}
	slog.Info("Deck written", "path", cfg.OutputFile, "cards", len(d.Notes()))
	return nil
}

// resolveListFilter builds the list-membership filter from --list-file,
// or from a named list inside the checked-out --list-repo. No list
// configured means no filter.
func resolveListFilter(cfg *config.Config) (map[domain.Handle]bool, error) {
	listPath := cfg.ListFile

	if cfg.ListRepo != "" {
		if cfg.ListID == "" {
			return nil, errors.New("--list-repo requires --list-id to name a list file in the repository")
		}
		localPath, err := listsource.LocalPath(listReposDir, cfg.ListRepo)
		if err != nil {
			return nil, err
		}
		if err := listsource.Sync(cfg.ListRepo, localPath); err != nil {
			return nil, err
		}
		listPath = filepath.Join(localPath, cfg.ListID)
	}

	if listPath == "" {
		return nil, nil
	}
	handles, err := listsource.LoadFile(listPath)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded problem list", "path", listPath, "problems", len(handles))
	return listsource.Filter(handles), nil
}
