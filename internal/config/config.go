// Package config loads the run configuration from flags, environment
// variables and an optional YAML file, in that order of increasing
// precedence: file < environment < flags.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix namespaces the environment variables this tool reads,
// e.g. ANKIGEN_OUTPUT_FILE overrides output-file.
const envPrefix = "ANKIGEN_"

// Config is the full configuration surface. Start/Stop bound the handle
// listing, ProblemStatus filters it, and IncludeSolutions toggles the
// expensive last-accepted-solution lookups.
type Config struct {
	ExportFile       string `koanf:"export-file" validate:"required"`
	OutputFile       string `koanf:"output-file" validate:"required"`
	Start            int    `koanf:"start" validate:"gte=0"`
	Stop             int    `koanf:"stop" validate:"gtefield=Start"`
	PageSize         int    `koanf:"page-size" validate:"gt=0"`
	ListID           string `koanf:"list-id"`
	ListFile         string `koanf:"list-file"`
	ListRepo         string `koanf:"list-repo"`
	ProblemStatus    string `koanf:"problem-status" validate:"omitempty,oneof=AC TRIED NOT_STARTED"`
	IncludeSolutions bool   `koanf:"include-solutions"`
	Workers          int    `koanf:"workers" validate:"gt=0"`
	Verbose          bool   `koanf:"verbose"`
}

// Load parses the command-line arguments (excluding the program name)
// and merges them over the environment and the optional --config file.
func Load(args []string) (*Config, error) {
	f := pflag.NewFlagSet("ankigen", pflag.ContinueOnError)
	f.String("config", "", "Optional YAML config file")
	f.String("export-file", "export.json", "JSON export of the solved-problem history")
	f.String("output-file", "leetcode.deck", "Path of the deck file to write")
	f.Int("start", 0, "Index of the first problem to include")
	f.Int("stop", 1<<31-1, "Index past the last problem to include")
	f.Int("page-size", 500, "Fetch batch size hint for paging providers")
	f.String("list-id", "", "Name of a curated list checked out via --list-repo")
	f.String("list-file", "", "Slug-per-line file restricting the problems included")
	f.String("list-repo", "", "Git repository holding curated list files")
	f.String("problem-status", "AC", "Keep only problems with this status (AC, TRIED, NOT_STARTED); empty keeps all")
	f.Bool("include-solutions", true, "Fetch the last accepted submission (expensive)")
	f.Int("workers", 8, "Concurrent flashcard builds")
	f.Bool("verbose", false, "Enable debug logging")

	if err := f.Parse(args); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if configPath, _ := f.GetString("config"); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	// Passing k makes posflag skip unchanged flags whose keys are
	// already set, so flag defaults don't clobber file or env values.
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, fmt.Errorf("failed to load flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
