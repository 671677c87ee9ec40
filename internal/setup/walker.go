// Package setup provides initialization and configuration functions
package setup

import (
	"context"
	"fmt"

	"github.com/bethropolis/project2txt/internal/ignore"
	"github.com/bethropolis/project2txt/internal/utils"
	"github.com/bethropolis/project2txt/internal/walker"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// WalkerConfig holds all parameters needed to configure a directory walker
type WalkerConfig struct {
	RootDir    string
	OutputDir  string
	Patterns   []string
	IgnoreCase bool
	GitIgnore  bool
	Context    context.Context
	Progress   walker.ProgressCallback
	Logger     utils.Logger
}

// LoadIgnorePatterns reads the ignore-list file. An empty path means no
// ignore list. A file that can't be read is reported and treated as empty;
// the second return value tells whether patterns were actually loaded.
func LoadIgnorePatterns(path string, logger utils.Logger) ([]string, bool) {
	if path == "" {
		return nil, false
	}
	logger = utils.OrNoop(logger)

	patterns, err := ignore.ParseIgnoreFile(path)
	if err != nil {
		logger.Error("Error reading ignore file %s: %v", path, err)
		return nil, false
	}
	return patterns, true
}

// ConfigureWalker sets up an ignore matcher and walker options based on the config
func ConfigureWalker(cfg WalkerConfig, infoLog InfoLogger) (
	*ignore.Matcher,
	[]walker.Option,
	error,
) {
	logger := utils.OrNoop(cfg.Logger)
	if infoLog == nil {
		infoLog = logger.Info
	}

	if len(cfg.Patterns) > 0 {
		infoLog("Using %d ignore patterns.", len(cfg.Patterns))
	} else {
		infoLog("No ignore patterns; every file will be exported.")
	}
	if cfg.IgnoreCase {
		infoLog("Matching ignore patterns case-insensitively.")
	}
	if cfg.GitIgnore {
		infoLog("Honoring .gitignore files under the root.")
	}

	// --- Initialize ignore matcher ---
	// Nothing to match against; skip pattern work on every entry
	disabled := len(cfg.Patterns) == 0 && !cfg.GitIgnore

	matcher, err := ignore.NewFromConfig(ignore.Config{
		RootDir:   cfg.RootDir,
		Patterns:  cfg.Patterns,
		CaseFold:  cfg.IgnoreCase,
		GitIgnore: cfg.GitIgnore,
		Logger:    logger,
		Disabled:  disabled,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing ignore rules: %w", err)
	}

	// --- Set up walk options ---
	walkOptions := []walker.Option{
		walker.WithLogger(logger),
		walker.WithExcludePaths(cfg.OutputDir),
	}
	if cfg.Context != nil {
		walkOptions = append(walkOptions, walker.WithContext(cfg.Context))
	}
	if cfg.Progress != nil {
		logger.Debug("Progress reporting enabled")
		walkOptions = append(walkOptions, walker.WithProgress(cfg.Progress))
	}

	return matcher, walkOptions, nil
}
