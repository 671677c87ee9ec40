package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/project2txt/internal/config"
	"github.com/bethropolis/project2txt/internal/export"
	"github.com/bethropolis/project2txt/internal/logger"
	"github.com/bethropolis/project2txt/internal/merge"
	"github.com/bethropolis/project2txt/internal/printer"
	"github.com/bethropolis/project2txt/internal/setup"
	"github.com/bethropolis/project2txt/internal/summary"
	"github.com/bethropolis/project2txt/internal/utils"
	"github.com/bethropolis/project2txt/internal/walker"
	"github.com/fatih/color"
	"go.uber.org/zap"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    utils.Logger
	Output io.Writer // console notices and the JSON summary
	Errors io.Writer // logs and the skipped items table
}

// Option configures an App
type Option func(*App)

// WithOutput sets where console notices go
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.Output = w
	}
}

// WithErrorOutput sets where logs and the skipped items table go
func WithErrorOutput(w io.Writer) Option {
	return func(a *App) {
		a.Errors = w
	}
}

// WithLogger replaces the logger built from the config
func WithLogger(l utils.Logger) Option {
	return func(a *App) {
		a.log = l
	}
}

// New creates a new App instance
func New(cfg *config.Config, opts ...Option) *App {
	color.NoColor = !cfg.UseColors

	a := &App{
		cfg:    cfg,
		Output: os.Stdout,
		Errors: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.log == nil {
		level := logger.ParseLevel(cfg.EffectiveLogLevel())
		if cfg.LogFormat == config.LogFormatJSON {
			a.log = logger.NewZap(a.Errors, level,
				zap.String("appName", "project2txt"),
				zap.String("appVersion", cfg.Version),
			)
		} else {
			a.log = logger.New(a.Errors, level, cfg.UseColors)
		}
	}

	return a
}

// Run walks the root, exports every non-ignored file and merges the
// artifacts. Only failures that stop the whole run are returned; per-file
// and per-directory problems are logged and the run continues.
func (a *App) Run(ctx context.Context) error {
	startTime := time.Now()
	defer a.sync()

	a.log.Debug("Directory: %s", a.cfg.RootDir)
	a.log.Debug("Output: %s", a.cfg.OutputDir)
	a.log.Debug("Ignore file: %q, gitignore=%v, ignore-case=%v, unique-names=%v",
		a.cfg.IgnoreFile, a.cfg.GitIgnore, a.cfg.IgnoreCase, a.cfg.UniqueNames)

	// --- Directory validation ---
	absRootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		a.log.Error("Invalid root directory path '%s': %v", a.cfg.RootDir, err)
		return fmt.Errorf("invalid root directory: %w", err)
	}
	dirInfo, err := os.Stat(absRootDir)
	if err != nil {
		if os.IsNotExist(err) {
			a.log.Error("Root directory '%s' not found.", absRootDir)
		} else {
			a.log.Error("Could not access root directory '%s': %v", absRootDir, err)
		}
		return fmt.Errorf("cannot access root directory: %w", err)
	}
	if !dirInfo.IsDir() {
		a.log.Error("Specified path '%s' is not a directory.", absRootDir)
		return fmt.Errorf("root '%s' is not a directory", absRootDir)
	}

	absOutputDir, err := filepath.Abs(a.cfg.OutputDir)
	if err != nil {
		a.log.Error("Invalid output directory path '%s': %v", a.cfg.OutputDir, err)
		return fmt.Errorf("invalid output directory: %w", err)
	}
	if err := os.MkdirAll(absOutputDir, 0755); err != nil {
		a.log.Error("Could not create output directory '%s': %v", absOutputDir, err)
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	p := printer.New().WithOutput(a.Output).WithColors(a.cfg.ColorOutput).WithJSON(a.cfg.JSONOutput)
	p.Start(absRootDir, absOutputDir)

	// --- Ignore list ---
	patterns, loaded := setup.LoadIgnorePatterns(a.cfg.IgnoreFile, a.log)
	if loaded {
		p.IgnoreList(patterns)
	}

	matcher, walkOptions, err := setup.ConfigureWalker(setup.WalkerConfig{
		RootDir:    absRootDir,
		OutputDir:  absOutputDir,
		Patterns:   patterns,
		IgnoreCase: a.cfg.IgnoreCase,
		GitIgnore:  a.cfg.GitIgnore,
		Context:    ctx,
		Progress:   a.progress,
		Logger:     a.log,
	}, a.log.Debug)
	if err != nil {
		a.log.Error("%v", err)
		return err
	}

	// --- Walk and export ---
	exporter := export.New(absOutputDir,
		export.WithLogger(a.log),
		export.WithUniqueNames(a.cfg.UniqueNames),
	)

	var artifacts []string
	exportFn := func(path, relativePath string) error {
		artifact, err := exporter.Export(path, relativePath)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, artifact)
		p.Artifact(artifact)
		return nil
	}

	a.log.Info("Scanning directory: %s", absRootDir)
	result, err := walker.Walk(absRootDir, matcher, exportFn, walkOptions...)
	if err != nil {
		a.log.Error("Error processing directory %s: %v", absRootDir, err)
		return fmt.Errorf("walk failed: %w", err)
	}
	p.Skipped(result.Skipped)

	// --- Merge ---
	wordCount := 0
	if len(artifacts) == 0 {
		p.NoFiles()
	} else {
		mergedPath := filepath.Join(absOutputDir, merge.FileName)
		wordCount, err = merge.Merge(artifacts, mergedPath)
		if err != nil {
			a.log.Error("Error merging files into %s: %v", mergedPath, err)
			return err
		}
		p.Merged(filepath.Join(a.cfg.OutputDir, merge.FileName), wordCount)
	}

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, result.Skipped, a.Errors)
	}
	summary.DisplayResults(a.log, p.GetCount(), len(result.Skipped), wordCount, time.Since(startTime))

	return p.Finalize()
}

// progress reports each file as the walker reaches it
func (a *App) progress(stats walker.ProgressStats) {
	a.log.Debug("Progress: %s (%d/%d files exported, %d files and %d dirs skipped)",
		stats.CurrentFilePath, stats.ProcessedFiles, stats.TotalFiles, stats.SkippedFiles, stats.SkippedDirs)
}

// sync flushes loggers that buffer
func (a *App) sync() {
	if s, ok := a.log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
